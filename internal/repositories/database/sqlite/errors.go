package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// mapSQLiteError translates driver failures into the ledger's error vocabulary.
func mapSQLiteError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%s: %w: %v", msg, apperrors.ErrConcurrencyConflict, err)
		case sqlite3.ErrConstraint:
			switch sqliteErr.ExtendedCode {
			case sqlite3.ErrConstraintCheck:
				if strings.Contains(sqliteErr.Error(), "balance_cents") {
					return fmt.Errorf("%s: %w", msg, apperrors.ErrInsufficientFunds)
				}
				return fmt.Errorf("%s: %w: %v", msg, apperrors.ErrValidation, err)
			case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
				return fmt.Errorf("%s: %w: %v", msg, apperrors.ErrDuplicate, err)
			}
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrFull:
			return fmt.Errorf("%s: %w: %v", msg, apperrors.ErrTransientStore, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
