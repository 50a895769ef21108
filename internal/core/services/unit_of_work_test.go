package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTxManager fails Commit with the queued errors, then succeeds.
type scriptedTxManager struct {
	commitErrs []error
	begins     int
	commits    int
	rollbacks  int
}

func (m *scriptedTxManager) Begin(context.Context) (portsrepo.LedgerTx, error) {
	m.begins++
	return nil, nil
}

func (m *scriptedTxManager) Commit(context.Context, portsrepo.LedgerTx) error {
	m.commits++
	if len(m.commitErrs) > 0 {
		err := m.commitErrs[0]
		m.commitErrs = m.commitErrs[1:]
		return err
	}
	return nil
}

func (m *scriptedTxManager) Rollback(context.Context, portsrepo.LedgerTx) error {
	m.rollbacks++
	return nil
}

func TestUnitRunner_RetriesConflicts(t *testing.T) {
	tm := &scriptedTxManager{commitErrs: []error{apperrors.ErrConcurrencyConflict, apperrors.ErrConcurrencyConflict}}
	r := &unitRunner{txManager: tm, maxRetries: 3}

	calls := 0
	err := r.run(context.Background(), "buy", func(portsrepo.LedgerTx) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, tm.begins)
	assert.Equal(t, 3, tm.rollbacks, "every attempt is closed")
}

func TestUnitRunner_GivesUpAfterMaxRetries(t *testing.T) {
	conflict := fmt.Errorf("commit: %w", apperrors.ErrConcurrencyConflict)
	tm := &scriptedTxManager{commitErrs: []error{conflict, conflict, conflict}}
	r := &unitRunner{txManager: tm, maxRetries: 1}

	err := r.run(context.Background(), "sell", func(portsrepo.LedgerTx) error { return nil })

	assert.ErrorIs(t, err, apperrors.ErrConcurrencyConflict)
	assert.Equal(t, 2, tm.begins)
}

func TestUnitRunner_DoesNotRetryRejections(t *testing.T) {
	tm := &scriptedTxManager{}
	r := &unitRunner{txManager: tm, maxRetries: 3}

	calls := 0
	err := r.run(context.Background(), "withdraw", func(portsrepo.LedgerTx) error {
		calls++
		return &apperrors.InsufficientFundsError{RequiredCents: 10, AvailableCents: 5}
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, tm.commits)
	assert.Equal(t, 1, tm.rollbacks)
}

func TestUnitRunner_StopsOnCancelledContext(t *testing.T) {
	tm := &scriptedTxManager{commitErrs: []error{apperrors.ErrConcurrencyConflict}}
	r := &unitRunner{txManager: tm, maxRetries: 3}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.run(ctx, "deposit", func(portsrepo.LedgerTx) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, tm.begins)
}
