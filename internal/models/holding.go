package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a row of the portfolio_holdings table.
type Holding struct {
	HoldingID    string          `db:"holding_id"`
	UserID       string          `db:"user_id"`
	AccountID    string          `db:"account_id"`
	Symbol       string          `db:"symbol"`
	Quantity     decimal.Decimal `db:"quantity"`
	AvgCostCents int64           `db:"avg_cost_cents"`
	Source       string          `db:"source"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// HoldingWithAccount is a holding joined with its account columns.
type HoldingWithAccount struct {
	Holding
	AccountType string `db:"account_type"`
	AccountName string `db:"name"`
}
