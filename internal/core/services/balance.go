package services

import (
	"context"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
)

// applyDelta adds deltaCents to a locked account inside tx and refreshes acc.
// A debit larger than the balance is rejected with *apperrors.InsufficientFundsError
// before anything is written.
func applyDelta(ctx context.Context, tx portsrepo.LedgerTx, acc *domain.Account, deltaCents int64, userID string, now time.Time) error {
	if deltaCents < 0 && !acc.CanCover(-deltaCents) {
		return &apperrors.InsufficientFundsError{RequiredCents: -deltaCents, AvailableCents: acc.BalanceCents}
	}
	balance, err := tx.ApplyBalanceDelta(ctx, acc.AccountID, deltaCents, userID, now)
	if err != nil {
		return err
	}
	acc.BalanceCents = balance
	acc.Touch(userID, now)
	return nil
}
