package domain

import "time"

// WatchlistItem is a symbol a user follows.
type WatchlistItem struct {
	ItemID    string    `json:"itemID"`
	UserID    string    `json:"userID"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"createdAt"`
}
