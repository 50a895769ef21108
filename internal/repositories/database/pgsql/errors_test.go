package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: apperrors.ErrConcurrencyConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: apperrors.ErrConcurrencyConflict},
		{name: "balance check", err: &pgconn.PgError{Code: "23514", ConstraintName: balanceCheckConstraint}, want: apperrors.ErrInsufficientFunds},
		{name: "other check", err: &pgconn.PgError{Code: "23514", ConstraintName: "portfolio_holdings_quantity_check"}, want: apperrors.ErrValidation},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: apperrors.ErrDuplicate},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, want: apperrors.ErrTransientStore},
		{name: "canceled", err: context.Canceled, want: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPgError(tt.err, "op")
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapPgError_PassesThroughUnknown(t *testing.T) {
	base := errors.New("boom")
	got := mapPgError(base, "op")
	assert.ErrorIs(t, got, base)
	assert.False(t, errors.Is(got, apperrors.ErrTransientStore))
	assert.Nil(t, mapPgError(nil, "op"))
}
