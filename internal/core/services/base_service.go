package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now func() time.Time
}

// Now returns the current UTC time at microsecond precision, which is what both stores keep.
func (s *BaseService) Now() time.Time {
	if s.now != nil {
		return s.now().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.ErrorContext(ctx, msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// logRejection logs business rejections at INFO and everything else at ERROR.
func (s *BaseService) logRejection(ctx context.Context, err error, msg string, keyvals ...any) {
	if isBusinessRejection(err) {
		args := append([]any{slog.String("reason", err.Error())}, keyvals...)
		s.LogInfo(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isBusinessRejection(err error) bool {
	for _, target := range []error{
		apperrors.ErrValidation,
		apperrors.ErrNotFound,
		apperrors.ErrNotHalalApproved,
		apperrors.ErrInsufficientFunds,
		apperrors.ErrInsufficientQuantity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
