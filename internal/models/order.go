package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table.
type Order struct {
	OrderID             string              `db:"order_id"`
	UserID              string              `db:"user_id"`
	AccountID           string              `db:"account_id"`
	Symbol              string              `db:"symbol"`
	Side                string              `db:"side"`
	OrderType           string              `db:"order_type"`
	Quantity            decimal.Decimal     `db:"quantity"`
	Status              string              `db:"status"`
	ExecutionPriceCents sql.NullInt64       `db:"execution_price_cents"`
	ExecutionQuantity   decimal.NullDecimal `db:"execution_quantity"`
	TransactionID       sql.NullString      `db:"transaction_id"`
	CreatedAt           time.Time           `db:"created_at"`
	CompletedAt         sql.NullTime        `db:"completed_at"`
}
