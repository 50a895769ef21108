package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// WatchlistSvcFacade manages the caller's watchlist.
type WatchlistSvcFacade interface {
	ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error)
	AddToWatchlist(ctx context.Context, userID string, symbol string) (*domain.WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, userID string, symbol string) error
}
