package dto

import (
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// OpenAccountsRequest opens the default account set for the caller.
type OpenAccountsRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	AccountType      domain.AccountType `json:"accountType"`
	Name             string             `json:"name"`
	BalanceCents     int64              `json:"balanceCents"`
	BalanceFormatted string             `json:"balanceFormatted"`
	CurrencyCode     string             `json:"currencyCode"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		AccountType:      acc.AccountType,
		Name:             acc.Name,
		BalanceCents:     acc.BalanceCents,
		BalanceFormatted: domain.FormatCents(acc.BalanceCents, acc.CurrencyCode),
		CurrencyCode:     acc.CurrencyCode,
		CreatedAt:        acc.CreatedAt,
		LastUpdatedAt:    acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
