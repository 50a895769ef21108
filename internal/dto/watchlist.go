package dto

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// AddWatchlistRequest adds a symbol to the caller's watchlist.
type AddWatchlistRequest struct {
	Symbol string `json:"symbol" binding:"required,symbol"`
}

// WatchlistResponse wraps the caller's watchlist.
type WatchlistResponse struct {
	Items []domain.WatchlistItem `json:"items"`
}
