package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction and wraps it as a ledger unit.
func (r *BaseRepository) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, mapPgError(err, "failed to begin transaction")
	}
	return &pgxLedgerTx{tx: tx}, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, ltx portsrepo.LedgerTx) error {
	tx, err := unwrapTx(ltx)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, ltx portsrepo.LedgerTx) error {
	tx, err := unwrapTx(ltx)
	if err != nil {
		return err
	}
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

func unwrapTx(ltx portsrepo.LedgerTx) (pgx.Tx, error) {
	t, ok := ltx.(*pgxLedgerTx)
	if !ok || t == nil {
		return nil, apperrors.NewAppError(500, "unexpected ledger transaction type", fmt.Errorf("%T", ltx))
	}
	return t.tx, nil
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)
