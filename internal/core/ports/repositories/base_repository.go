package repositories

import (
	"context"
)

// TransactionManager opens and closes atomic units against the ledger store.
// Rollback after a successful Commit is a no-op, so callers can always defer it.
type TransactionManager interface {
	// Begin starts a new atomic unit.
	Begin(ctx context.Context) (LedgerTx, error)

	// Commit commits the unit. A concurrent-write failure is reported as apperrors.ErrConcurrencyConflict.
	Commit(ctx context.Context, tx LedgerTx) error

	// Rollback discards the unit.
	Rollback(ctx context.Context, tx LedgerTx) error
}
