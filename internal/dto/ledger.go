package dto

import (
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
)

// DepositRequest credits a holding account. AccountID defaults to the caller's holding account.
type DepositRequest struct {
	AccountID   *string `json:"accountId"`
	AmountCents int64   `json:"amountCents" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=255"`
}

// WithdrawRequest debits a holding account. AccountID defaults to the caller's holding account.
type WithdrawRequest struct {
	AccountID   *string `json:"accountId"`
	AmountCents int64   `json:"amountCents" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=255"`
}

// TransferRequest moves cash between two accounts of the caller.
type TransferRequest struct {
	FromAccountID string `json:"fromAccountId" binding:"required"`
	ToAccountID   string `json:"toAccountId" binding:"required"`
	AmountCents   int64  `json:"amountCents" binding:"required,gt=0"`
	Description   string `json:"description" binding:"max=255"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	Type            domain.TransactionType   `json:"type"`
	FromAccountID   *string                  `json:"fromAccountId"`
	ToAccountID     *string                  `json:"toAccountId"`
	AmountCents     int64                    `json:"amountCents"`
	AmountFormatted string                   `json:"amountFormatted"`
	CurrencyCode    string                   `json:"currencyCode"`
	Symbol          *string                  `json:"symbol,omitempty"`
	Quantity        *domain.Quantity         `json:"quantity,omitempty"`
	PriceCents      *int64                   `json:"priceCents,omitempty"`
	Status          domain.TransactionStatus `json:"status"`
	Description     string                   `json:"description,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		FromAccountID:   t.FromAccountID,
		ToAccountID:     t.ToAccountID,
		AmountCents:     t.AmountCents,
		AmountFormatted: domain.FormatCents(t.AmountCents, t.CurrencyCode),
		CurrencyCode:    t.CurrencyCode,
		Symbol:          t.Symbol,
		Quantity:        t.Quantity,
		PriceCents:      t.PriceCents,
		Status:          t.Status,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
}

// CashMovementResponse is returned by deposit and withdraw.
type CashMovementResponse struct {
	Account     AccountResponse     `json:"account"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToCashMovementResponse converts a domain.CashMovement to its DTO.
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		Account:     ToAccountResponse(&m.Account),
		Transaction: ToTransactionResponse(&m.Transaction),
	}
}

// TransferResponse is returned by transfer.
type TransferResponse struct {
	From        AccountResponse     `json:"from"`
	To          AccountResponse     `json:"to"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToTransferResponse converts a domain.TransferResult to its DTO.
func ToTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{
		From:        ToAccountResponse(&r.From),
		To:          ToAccountResponse(&r.To),
		Transaction: ToTransactionResponse(&r.Transaction),
	}
}

// ListTransactionsParams defines query parameters for the transaction history.
type ListTransactionsParams struct {
	AccountID *string `form:"accountId"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
