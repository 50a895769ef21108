package repositories

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// HoldingReader reads positions outside of an atomic unit.
type HoldingReader interface {
	// ListHoldings returns the user's holdings, optionally for one account, ordered by symbol.
	ListHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error)
}
