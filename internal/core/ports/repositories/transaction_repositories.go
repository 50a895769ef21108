package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// TransactionCursor is the position after which the next page starts.
type TransactionCursor struct {
	CreatedAt     time.Time
	TransactionID string
}

// TransactionFilter narrows a transaction history listing.
type TransactionFilter struct {
	// AccountID matches either leg.
	AccountID *string
	Limit     int
	After     *TransactionCursor
}

// TransactionReader lists the append-only audit trail.
type TransactionReader interface {
	// ListTransactions returns the user's transactions newest first.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)
}
