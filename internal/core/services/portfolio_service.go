package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/utils/pagination"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 100
)

// portfolioService derives read-only views from accounts, holdings and transactions.
type portfolioService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	holdingRepo portsrepo.HoldingReader
	txnRepo     portsrepo.TransactionReader
}

// NewPortfolioService creates a new portfolio query service.
func NewPortfolioService(accountRepo portsrepo.AccountReader, holdingRepo portsrepo.HoldingReader, txnRepo portsrepo.TransactionReader) portssvc.PortfolioSvcFacade {
	return &portfolioService{
		accountRepo: accountRepo,
		holdingRepo: holdingRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)

func (s *portfolioService) GetHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error) {
	if accountID != nil && *accountID != "" {
		if err := s.requireOwnedAccount(ctx, userID, *accountID); err != nil {
			return nil, err
		}
	} else {
		accountID = nil
	}

	holdings, err := s.holdingRepo.ListHoldings(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holdings", slog.String("user_id", userID))
		return nil, err
	}
	if holdings == nil {
		return []domain.HoldingWithAccount{}, nil
	}
	return holdings, nil
}

func (s *portfolioService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := clampLimit(params.Limit, defaultTransactionLimit, maxTransactionLimit)
	filter := portsrepo.TransactionFilter{Limit: limit + 1}

	if params.AccountID != nil && *params.AccountID != "" {
		if err := s.requireOwnedAccount(ctx, userID, *params.AccountID); err != nil {
			return nil, err
		}
		filter.AccountID = params.AccountID
	}
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, txnID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			s.LogDebug(ctx, "Rejected pagination token", slog.String("error", err.Error()))
			return nil, apperrors.NewValidationError("invalid nextToken")
		}
		filter.After = &portsrepo.TransactionCursor{CreatedAt: createdAt, TransactionID: txnID}
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, err
	}

	resp := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		resp.NextToken = &token
	}
	for i := range txns {
		resp.Transactions = append(resp.Transactions, dto.ToTransactionResponse(&txns[i]))
	}
	return resp, nil
}

func (s *portfolioService) GetNetWorth(ctx context.Context, userID string) (*domain.NetWorth, error) {
	accounts, holdings, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	nw := domain.ComputeNetWorth(accounts, holdings)
	return &nw, nil
}

func (s *portfolioService) GetAnalytics(ctx context.Context, userID string) (*dto.AnalyticsResponse, error) {
	accounts, holdings, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := domain.ComputeAnalytics(accounts, holdings)
	return &dto.AnalyticsResponse{
		PortfolioAnalytics: report,
		Allocation:         domain.ComputeAllocation(report),
	}, nil
}

// snapshot reads accounts and holdings. The two reads are not one atomic unit, so a
// report taken during an order may briefly miss its cash or position leg.
func (s *portfolioService) snapshot(ctx context.Context, userID string) ([]domain.Account, []domain.Holding, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report", slog.String("user_id", userID))
		return nil, nil, err
	}
	rows, err := s.holdingRepo.ListHoldings(ctx, userID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holdings for report", slog.String("user_id", userID))
		return nil, nil, err
	}
	holdings := make([]domain.Holding, len(rows))
	for i, h := range rows {
		holdings[i] = h.Holding
	}
	return accounts, holdings, nil
}

func (s *portfolioService) requireOwnedAccount(ctx context.Context, userID, accountID string) error {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !acc.IsOwnedBy(userID) {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
