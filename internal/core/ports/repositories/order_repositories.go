package repositories

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// OrderReader reads executed orders.
type OrderReader interface {
	// ListOrders returns the user's orders newest first.
	ListOrders(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error)
}
