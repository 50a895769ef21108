package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	UserID        string              `db:"user_id"`
	Type          string              `db:"type"`
	FromAccountID sql.NullString      `db:"from_account_id"` // Nullable
	ToAccountID   sql.NullString      `db:"to_account_id"`   // Nullable
	AmountCents   int64               `db:"amount_cents"`
	CurrencyCode  string              `db:"currency_code"`
	Symbol        sql.NullString      `db:"symbol"`      // Set for buy and sell
	Quantity      decimal.NullDecimal `db:"quantity"`    // Set for buy and sell
	PriceCents    sql.NullInt64       `db:"price_cents"` // Set for buy and sell
	Status        string              `db:"status"`
	Description   string              `db:"description"`
	CreatedAt     time.Time           `db:"created_at"`
}
