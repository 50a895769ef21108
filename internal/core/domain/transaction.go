package domain

import (
	"fmt"
	"time"
)

// TransactionType is the kind of balance-affecting event.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionTransfer   TransactionType = "transfer"
	TransactionBuy        TransactionType = "buy"
	TransactionSell       TransactionType = "sell"
)

// TransactionStatus is the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is an immutable audit record of one balance change.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID"`
	Type          TransactionType   `json:"type"`
	FromAccountID *string           `json:"fromAccountID,omitempty"`
	ToAccountID   *string           `json:"toAccountID,omitempty"`
	AmountCents   int64             `json:"amountCents"`
	CurrencyCode  string            `json:"currencyCode"`
	Symbol        *string           `json:"symbol,omitempty"`
	Quantity      *Quantity         `json:"quantity,omitempty"`
	PriceCents    *int64            `json:"priceCents,omitempty"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Touches reports whether the transaction debits or credits accountID.
func (t Transaction) Touches(accountID string) bool {
	return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
		(t.ToAccountID != nil && *t.ToAccountID == accountID)
}

// Validate checks that the legs and trade fields match the transaction type.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	// Only a sell may carry zero: proceeds of a sub-cent position round to nothing.
	if t.AmountCents < 0 || (t.AmountCents == 0 && t.Type != TransactionSell) {
		return fmt.Errorf("transaction amount must be positive")
	}
	hasFrom, hasTo := t.FromAccountID != nil, t.ToAccountID != nil
	switch t.Type {
	case TransactionDeposit, TransactionSell:
		if !hasTo || hasFrom {
			return fmt.Errorf("%s transaction must credit exactly one account", t.Type)
		}
	case TransactionWithdrawal, TransactionBuy:
		if !hasFrom || hasTo {
			return fmt.Errorf("%s transaction must debit exactly one account", t.Type)
		}
	case TransactionTransfer:
		if !hasFrom || !hasTo {
			return fmt.Errorf("transfer transaction requires both accounts")
		}
		if *t.FromAccountID == *t.ToAccountID {
			return fmt.Errorf("transfer accounts must differ")
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Type == TransactionBuy || t.Type == TransactionSell {
		if t.Symbol == nil || t.Quantity == nil || t.PriceCents == nil {
			return fmt.Errorf("%s transaction requires symbol, quantity and price", t.Type)
		}
	}
	return nil
}
