package models

import (
	"database/sql"
	"time"
)

// HalalSymbol is a row of the halal_symbols table.
type HalalSymbol struct {
	SymbolID       string       `db:"symbol_id"`
	Symbol         string       `db:"symbol"`
	Name           string       `db:"name"`
	AssetType      string       `db:"asset_type"`
	LastVerifiedAt sql.NullTime `db:"last_verified_at"`
	CreatedAt      time.Time    `db:"created_at"`
}

// WatchlistItem is a row of the watchlist_items table.
type WatchlistItem struct {
	ItemID    string    `db:"item_id"`
	UserID    string    `db:"user_id"`
	Symbol    string    `db:"symbol"`
	CreatedAt time.Time `db:"created_at"`
}

// InvestmentProfile is a row of the investment_profiles table.
type InvestmentProfile struct {
	UserID         string         `db:"user_id"`
	RiskProfile    sql.NullString `db:"risk_profile"`
	RebalanceLogic sql.NullString `db:"rebalance_logic"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
