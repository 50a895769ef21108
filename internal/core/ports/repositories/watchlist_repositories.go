package repositories

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// WatchlistRepositoryFacade persists per-user watchlists.
type WatchlistRepositoryFacade interface {
	ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error)

	// UpsertWatchlistItem adds the symbol or returns the existing row.
	UpsertWatchlistItem(ctx context.Context, item domain.WatchlistItem) (*domain.WatchlistItem, error)

	// DeleteWatchlistItem returns apperrors.ErrNotFound when the symbol is not on the list.
	DeleteWatchlistItem(ctx context.Context, userID string, symbol string) error
}
