package domain

import (
	"fmt"
)

// AccountType is the purpose of a user's cash ledger.
type AccountType string

const (
	// AccountTypeHolding receives deposits and pays withdrawals.
	AccountTypeHolding AccountType = "holding"
	// AccountTypeInvestment is the managed portfolio account.
	AccountTypeInvestment AccountType = "investment"
	// AccountTypeSelfDirected is the only account type that can trade.
	AccountTypeSelfDirected AccountType = "self_directed"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeHolding, AccountTypeInvestment, AccountTypeSelfDirected:
		return true
	}
	return false
}

// Account is one cash ledger owned by a user. Balance is in integer cents.
type Account struct {
	AccountID    string      `json:"accountID"`
	UserID       string      `json:"userID"`
	AccountType  AccountType `json:"accountType"`
	Name         string      `json:"name"`
	BalanceCents int64       `json:"balanceCents"`
	CurrencyCode string      `json:"currencyCode"`
	AuditFields
}

// IsOwnedBy reports whether the account belongs to userID.
func (a Account) IsOwnedBy(userID string) bool {
	return a.UserID == userID
}

// CanCover reports whether a debit of amountCents leaves the balance non-negative.
func (a Account) CanCover(amountCents int64) bool {
	return a.BalanceCents >= amountCents
}

// Validate checks the structural invariants of an account.
func (a Account) Validate() error {
	if a.AccountID == "" {
		return fmt.Errorf("account ID is required")
	}
	if a.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !a.AccountType.IsValid() {
		return fmt.Errorf("invalid account type %q", a.AccountType)
	}
	if a.BalanceCents < 0 {
		return fmt.Errorf("balance cannot be negative")
	}
	if len(a.CurrencyCode) != 3 {
		return fmt.Errorf("currency code must be 3 letters")
	}
	return nil
}

// DefaultAccountSpec is one of the accounts opened for a new user.
type DefaultAccountSpec struct {
	Type AccountType
	Name string
}

// DefaultAccounts is the account set opened at onboarding.
var DefaultAccounts = []DefaultAccountSpec{
	{Type: AccountTypeHolding, Name: "Holding"},
	{Type: AccountTypeInvestment, Name: "Automated Portfolio"},
	{Type: AccountTypeSelfDirected, Name: "Self-Directed"},
}
