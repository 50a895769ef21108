package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
)

// BaseRepository provides common functionality for all repositories.
// The DB must be opened with _txlock=immediate so each unit holds the write lock from BEGIN.
type BaseRepository struct {
	DB *sql.DB
}

// Begin starts a new database transaction and wraps it as a ledger unit.
func (r *BaseRepository) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to begin transaction")
	}
	return &sqlLedgerTx{tx: tx}, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(_ context.Context, ltx portsrepo.LedgerTx) error {
	tx, err := unwrapTx(ltx)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return mapSQLiteError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
func (r *BaseRepository) Rollback(_ context.Context, ltx portsrepo.LedgerTx) error {
	tx, err := unwrapTx(ltx)
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

func unwrapTx(ltx portsrepo.LedgerTx) (*sql.Tx, error) {
	t, ok := ltx.(*sqlLedgerTx)
	if !ok || t == nil {
		return nil, apperrors.NewAppError(500, "unexpected ledger transaction type", fmt.Errorf("%T", ltx))
	}
	return t.tx, nil
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)
