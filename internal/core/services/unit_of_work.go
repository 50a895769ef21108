package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
)

const (
	defaultMaxRetries = 3
	retryBackoff      = 15 * time.Millisecond
)

// unitRunner executes ledger mutations as atomic units. A unit that fails with
// ErrConcurrencyConflict is re-run from the start, up to maxRetries more times.
type unitRunner struct {
	BaseService
	txManager  portsrepo.TransactionManager
	maxRetries int
	metrics    *metrics.Collector
}

func (r *unitRunner) run(ctx context.Context, operation string, fn func(tx portsrepo.LedgerTx) error) error {
	for attempt := 1; ; attempt++ {
		err := r.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, apperrors.ErrConcurrencyConflict) || attempt > r.maxRetries {
			return err
		}

		r.LogWarn(ctx, "Ledger unit conflicted, retrying",
			slog.String("operation", operation),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		r.metrics.RecordConflictRetry(operation)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

func (r *unitRunner) runOnce(ctx context.Context, fn func(tx portsrepo.LedgerTx) error) (err error) {
	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.txManager.Rollback(ctx, tx); rbErr != nil {
			r.LogError(ctx, rbErr, "Failed to roll back ledger unit")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return r.txManager.Commit(ctx, tx)
}
