package handlers_test

import (
	"context"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockLedgerService) OpenDefaultAccounts(ctx context.Context, userID string, req dto.OpenAccountsRequest) ([]domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockLedgerService) Deposit(ctx context.Context, userID string, req dto.DepositRequest) (*domain.CashMovement, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}
func (m *MockLedgerService) Withdraw(ctx context.Context, userID string, req dto.WithdrawRequest) (*domain.CashMovement, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}
func (m *MockLedgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Buy(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderExecution), args.Error(1)
}
func (m *MockOrderService) Sell(ctx context.Context, userID string, req dto.PlaceOrderRequest) (*domain.OrderExecution, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderExecution), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, userID string, params dto.ListOrdersParams) ([]domain.Order, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetHoldings(ctx context.Context, userID string, accountID *string) ([]domain.HoldingWithAccount, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HoldingWithAccount), args.Error(1)
}
func (m *MockPortfolioService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockPortfolioService) GetNetWorth(ctx context.Context, userID string) (*domain.NetWorth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetWorth), args.Error(1)
}
func (m *MockPortfolioService) GetAnalytics(ctx context.Context, userID string) (*dto.AnalyticsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalyticsResponse), args.Error(1)
}

var _ portssvc.PortfolioSvcFacade = (*MockPortfolioService)(nil)

// --- Mock HalalService ---
type MockHalalService struct {
	mock.Mock
}

func (m *MockHalalService) IsApproved(ctx context.Context, symbol string) (bool, error) {
	args := m.Called(ctx, symbol)
	return args.Bool(0), args.Error(1)
}
func (m *MockHalalService) Check(ctx context.Context, symbol string) error {
	return m.Called(ctx, symbol).Error(0)
}
func (m *MockHalalService) ListSymbols(ctx context.Context) ([]domain.HalalSymbol, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HalalSymbol), args.Error(1)
}
func (m *MockHalalService) SearchSymbols(ctx context.Context, search string, limit int) ([]domain.HalalSymbol, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HalalSymbol), args.Error(1)
}
func (m *MockHalalService) SeedSymbols(ctx context.Context, symbols []domain.HalalSymbol) (int, error) {
	args := m.Called(ctx, symbols)
	return args.Int(0), args.Error(1)
}

var _ portssvc.HalalSvcFacade = (*MockHalalService)(nil)

// --- Mock WatchlistService ---
type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchlistItem), args.Error(1)
}
func (m *MockWatchlistService) AddToWatchlist(ctx context.Context, userID string, symbol string) (*domain.WatchlistItem, error) {
	args := m.Called(ctx, userID, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WatchlistItem), args.Error(1)
}
func (m *MockWatchlistService) RemoveFromWatchlist(ctx context.Context, userID string, symbol string) error {
	return m.Called(ctx, userID, symbol).Error(0)
}

var _ portssvc.WatchlistSvcFacade = (*MockWatchlistService)(nil)

// --- Mock MarketService ---
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockMarketService) GetQuotes(ctx context.Context, symbols []string) (map[string]*domain.Quote, error) {
	args := m.Called(ctx, symbols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Quote), args.Error(1)
}

var _ portssvc.MarketSvcFacade = (*MockMarketService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.InvestmentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentProfile), args.Error(1)
}
func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.InvestmentProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentProfile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)
