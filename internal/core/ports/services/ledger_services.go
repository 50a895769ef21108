package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount returns an account owned by userID, or apperrors.ErrAccountNotFound.
	GetAccount(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts returns all accounts of userID.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// OpenDefaultAccounts creates the onboarding account set if the user has no accounts.
	OpenDefaultAccounts(ctx context.Context, userID string, req dto.OpenAccountsRequest) ([]domain.Account, error)
}

// CashMovementSvc moves cash in, out and between accounts. Each call is one atomic unit.
type CashMovementSvc interface {
	Deposit(ctx context.Context, userID string, req dto.DepositRequest) (*domain.CashMovement, error)
	Withdraw(ctx context.Context, userID string, req dto.WithdrawRequest) (*domain.CashMovement, error)
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.TransferResult, error)
}

// LedgerSvcFacade combines account and cash movement operations.
type LedgerSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	CashMovementSvc
}
