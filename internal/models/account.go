package models

// Account is a row of the accounts table.
type Account struct {
	AccountID    string `db:"account_id"`
	UserID       string `db:"user_id"`
	AccountType  string `db:"account_type"`
	Name         string `db:"name"`
	BalanceCents int64  `db:"balance_cents"`
	CurrencyCode string `db:"currency_code"`
	AuditFields
}
