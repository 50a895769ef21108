package services

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/dto"
)

// PortfolioSvcFacade derives read-only views from the ledger. None of its methods mutate state.
type PortfolioSvcFacade interface {
	GetHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	GetNetWorth(ctx context.Context, userID string) (*domain.NetWorth, error)
	GetAnalytics(ctx context.Context, userID string) (*dto.AnalyticsResponse, error)
}
