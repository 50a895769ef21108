package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/amanah_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/core/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	alice = "user-alice"
	bob   = "user-bob"
)

type LedgerFlowTestSuite struct {
	suite.Suite
	ctx       context.Context
	repos     portsrepo.RepositoryProvider
	halal     portssvc.HalalSvcFacade
	ledger    portssvc.LedgerSvcFacade
	orders    portssvc.OrderSvcFacade
	portfolio portssvc.PortfolioSvcFacade
	watchlist portssvc.WatchlistSvcFacade
	profile   portssvc.ProfileSvcFacade
}

func (s *LedgerFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, s.repos = newSQLiteRepos(s.T())

	s.halal = services.NewHalalService(s.repos.HalalRepo)
	_, err := s.halal.SeedSymbols(s.ctx, testHalalSymbols)
	s.Require().NoError(err)

	s.ledger = services.NewLedgerService(s.repos.TxManager, s.repos.AccountRepo)
	s.orders = services.NewOrderService(s.repos.TxManager, s.repos.OrderRepo, s.halal,
		services.WithPricingMode(config.PricingClient),
		services.WithOrderMaxRetries(5))
	s.portfolio = services.NewPortfolioService(s.repos.AccountRepo, s.repos.HoldingRepo, s.repos.TxnRepo)
	s.watchlist = services.NewWatchlistService(s.repos.WatchlistRepo, s.halal)
	s.profile = services.NewProfileService(s.repos.ProfileRepo)
}

func TestLedgerFlowTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerFlowTestSuite))
}

// onboard opens the default accounts for userID and returns them by type.
func (s *LedgerFlowTestSuite) onboard(userID string) map[domain.AccountType]domain.Account {
	accounts, err := s.ledger.OpenDefaultAccounts(s.ctx, userID, dto.OpenAccountsRequest{})
	s.Require().NoError(err)
	byType := make(map[domain.AccountType]domain.Account, len(accounts))
	for _, a := range accounts {
		byType[a.AccountType] = a
	}
	return byType
}

// fundTrading deposits into the holding account and moves the cash to the self-directed account.
func (s *LedgerFlowTestSuite) fundTrading(userID string, accounts map[domain.AccountType]domain.Account, cents int64) {
	_, err := s.ledger.Deposit(s.ctx, userID, dto.DepositRequest{AmountCents: cents})
	s.Require().NoError(err)
	_, err = s.ledger.Transfer(s.ctx, userID, dto.TransferRequest{
		FromAccountID: accounts[domain.AccountTypeHolding].AccountID,
		ToAccountID:   accounts[domain.AccountTypeSelfDirected].AccountID,
		AmountCents:   cents,
	})
	s.Require().NoError(err)
}

func (s *LedgerFlowTestSuite) order(symbol string, qty int64, priceCents int64) dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{Symbol: symbol, Quantity: domain.QuantityFromInt(qty), PriceCents: ptr(priceCents)}
}

func (s *LedgerFlowTestSuite) balance(accountID string) int64 {
	acc, err := s.repos.AccountRepo.FindAccountByID(s.ctx, accountID)
	s.Require().NoError(err)
	return acc.BalanceCents
}

func (s *LedgerFlowTestSuite) countOrders(userID string) int {
	orders, err := s.orders.ListOrders(s.ctx, userID, dto.ListOrdersParams{Limit: 100})
	s.Require().NoError(err)
	return len(orders)
}

func (s *LedgerFlowTestSuite) countTransactions(userID string) int {
	page, err := s.portfolio.ListTransactions(s.ctx, userID, dto.ListTransactionsParams{Limit: 100})
	s.Require().NoError(err)
	return len(page.Transactions)
}

func (s *LedgerFlowTestSuite) TestOpenDefaultAccounts_Idempotent() {
	first, err := s.ledger.OpenDefaultAccounts(s.ctx, alice, dto.OpenAccountsRequest{CurrencyCode: "usd"})
	s.Require().NoError(err)
	s.Require().Len(first, 3)
	s.Equal(domain.AccountTypeHolding, first[0].AccountType)
	s.Equal(domain.AccountTypeInvestment, first[1].AccountType)
	s.Equal(domain.AccountTypeSelfDirected, first[2].AccountType)

	second, err := s.ledger.OpenDefaultAccounts(s.ctx, alice, dto.OpenAccountsRequest{})
	s.Require().NoError(err)
	s.Require().Len(second, 3)
	for i := range first {
		s.Equal(first[i].AccountID, second[i].AccountID)
	}

	_, err = s.ledger.OpenDefaultAccounts(s.ctx, bob, dto.OpenAccountsRequest{CurrencyCode: "EUR"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerFlowTestSuite) TestGetAccount_HidesForeignAccounts() {
	accounts := s.onboard(alice)
	holdingID := accounts[domain.AccountTypeHolding].AccountID

	acc, err := s.ledger.GetAccount(s.ctx, alice, holdingID)
	s.Require().NoError(err)
	s.Equal(holdingID, acc.AccountID)

	_, err = s.ledger.GetAccount(s.ctx, bob, holdingID)
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (s *LedgerFlowTestSuite) TestDepositAndWithdraw() {
	accounts := s.onboard(alice)
	holdingID := accounts[domain.AccountTypeHolding].AccountID

	moved, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 10000})
	s.Require().NoError(err)
	s.Equal(holdingID, moved.Account.AccountID)
	s.Equal(int64(10000), moved.Account.BalanceCents)
	s.Equal(domain.TransactionDeposit, moved.Transaction.Type)
	s.Require().NotNil(moved.Transaction.ToAccountID)
	s.Nil(moved.Transaction.FromAccountID)

	_, err = s.ledger.Withdraw(s.ctx, alice, dto.WithdrawRequest{AccountID: &holdingID, AmountCents: 15000})
	s.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	var fundsErr *apperrors.InsufficientFundsError
	s.Require().True(errors.As(err, &fundsErr))
	s.Equal(int64(15000), fundsErr.RequiredCents)
	s.Equal(int64(10000), fundsErr.AvailableCents)
	s.Equal(int64(5000), fundsErr.ShortfallCents())

	moved, err = s.ledger.Withdraw(s.ctx, alice, dto.WithdrawRequest{AmountCents: 4000, Description: "rent"})
	s.Require().NoError(err)
	s.Equal(int64(6000), moved.Account.BalanceCents)
	s.Equal("rent", moved.Transaction.Description)
	s.Equal(int64(6000), s.balance(holdingID))
	s.Equal(2, s.countTransactions(alice))
}

func (s *LedgerFlowTestSuite) TestDeposit_Rejections() {
	accounts := s.onboard(alice)

	_, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 0})
	s.ErrorIs(err, apperrors.ErrValidation)

	sd := accounts[domain.AccountTypeSelfDirected].AccountID
	_, err = s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AccountID: &sd, AmountCents: 100})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.ledger.Deposit(s.ctx, bob, dto.DepositRequest{AmountCents: 100})
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	holding := accounts[domain.AccountTypeHolding].AccountID
	_, err = s.ledger.Deposit(s.ctx, bob, dto.DepositRequest{AccountID: &holding, AmountCents: 100})
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	s.Equal(0, s.countTransactions(alice))
}

func (s *LedgerFlowTestSuite) TestTransfer() {
	accounts := s.onboard(alice)
	holding := accounts[domain.AccountTypeHolding].AccountID
	invest := accounts[domain.AccountTypeInvestment].AccountID
	_, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 5000})
	s.Require().NoError(err)

	res, err := s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: holding, ToAccountID: invest, AmountCents: 1500})
	s.Require().NoError(err)
	s.Equal(int64(3500), res.From.BalanceCents)
	s.Equal(int64(1500), res.To.BalanceCents)
	s.Equal(domain.TransactionTransfer, res.Transaction.Type)
	s.Equal(domain.DefaultCurrency, res.Transaction.CurrencyCode)

	_, err = s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: holding, ToAccountID: holding, AmountCents: 1})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: invest, ToAccountID: holding, AmountCents: 1501})
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	bobs := s.onboard(bob)
	_, err = s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: holding, ToAccountID: bobs[domain.AccountTypeHolding].AccountID, AmountCents: 1})
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	s.Equal(int64(3500), s.balance(holding))
	s.Equal(int64(1500), s.balance(invest))
}

func (s *LedgerFlowTestSuite) TestBuySellLifecycle() {
	accounts := s.onboard(alice)
	sd := accounts[domain.AccountTypeSelfDirected].AccountID
	s.fundTrading(alice, accounts, 10000)

	// Buy 2 @ 4000 from 10000.
	exec, err := s.orders.Buy(s.ctx, alice, s.order("aapl", 2, 4000))
	s.Require().NoError(err)
	s.Equal(int64(2000), exec.Account.BalanceCents)
	s.Equal(domain.TransactionBuy, exec.Transaction.Type)
	s.Equal(int64(8000), exec.Transaction.AmountCents)
	s.Require().NotNil(exec.Holding)
	s.Equal("AAPL", exec.Holding.Symbol)
	s.True(exec.Holding.Quantity.Equal(domain.QuantityFromInt(2)))
	s.Equal(int64(4000), exec.Holding.AvgCostCents)
	s.Equal(domain.OrderCompleted, exec.Order.Status)
	s.Require().NotNil(exec.Order.TransactionID)
	s.Equal(exec.Transaction.TransactionID, *exec.Order.TransactionID)

	// Add 1 @ 5000 after topping up.
	s.fundTrading(alice, accounts, 5000)
	exec, err = s.orders.Buy(s.ctx, alice, s.order("AAPL", 1, 5000))
	s.Require().NoError(err)
	s.True(exec.Holding.Quantity.Equal(domain.QuantityFromInt(3)))
	s.Equal(int64(4333), exec.Holding.AvgCostCents)
	s.Equal(int64(2000), s.balance(sd))

	// Buy 2 @ 4000 with 2000 available.
	ordersBefore, txnsBefore := s.countOrders(alice), s.countTransactions(alice)
	_, err = s.orders.Buy(s.ctx, alice, s.order("AAPL", 2, 4000))
	s.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	var fundsErr *apperrors.InsufficientFundsError
	s.Require().True(errors.As(err, &fundsErr))
	s.Equal(int64(8000), fundsErr.RequiredCents)
	s.Equal(int64(2000), fundsErr.AvailableCents)
	s.Equal(ordersBefore, s.countOrders(alice))
	s.Equal(txnsBefore, s.countTransactions(alice))

	// Sell 4 of 3.
	_, err = s.orders.Sell(s.ctx, alice, s.order("AAPL", 4, 5000))
	s.Require().ErrorIs(err, apperrors.ErrInsufficientQuantity)
	var qtyErr *apperrors.InsufficientQuantityError
	s.Require().True(errors.As(err, &qtyErr))
	s.True(qtyErr.Available.Equal(decimal.NewFromInt(3)))
	s.True(qtyErr.Requested.Equal(decimal.NewFromInt(4)))

	// Sell all 3 @ 5000.
	exec, err = s.orders.Sell(s.ctx, alice, s.order("AAPL", 3, 5000))
	s.Require().NoError(err)
	s.Nil(exec.Holding)
	s.Equal(int64(17000), exec.Account.BalanceCents)
	s.Equal(int64(15000), exec.Transaction.AmountCents)
	s.Require().NotNil(exec.Transaction.ToAccountID)
	s.Require().NotNil(exec.Order.ExecutionQuantity)
	s.True(exec.Order.ExecutionQuantity.Equal(domain.QuantityFromInt(3)))

	holdings, err := s.portfolio.GetHoldings(s.ctx, alice, nil)
	s.Require().NoError(err)
	s.Empty(holdings)
	s.Equal(3, s.countOrders(alice))
}

func (s *LedgerFlowTestSuite) TestNotHalalRejectedBeforeLedger() {
	// No accounts at all: the halal screen must reject first.
	_, err := s.orders.Buy(s.ctx, alice, s.order("XYZ", 1, 100))
	s.ErrorIs(err, apperrors.ErrNotHalalApproved)
	_, err = s.orders.Sell(s.ctx, alice, s.order("xyz", 1, 100))
	s.ErrorIs(err, apperrors.ErrNotHalalApproved)
	_, err = s.watchlist.AddToWatchlist(s.ctx, alice, "XYZ")
	s.ErrorIs(err, apperrors.ErrNotHalalApproved)

	s.Equal(0, s.countOrders(alice))
	items, err := s.watchlist.ListWatchlist(s.ctx, alice)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *LedgerFlowTestSuite) TestOrderAccountChecks() {
	_, err := s.orders.Buy(s.ctx, alice, s.order("AAPL", 1, 100))
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	accounts := s.onboard(alice)
	_, err = s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 10000})
	s.Require().NoError(err)

	holding := accounts[domain.AccountTypeHolding].AccountID
	req := s.order("AAPL", 1, 100)
	req.AccountID = &holding
	_, err = s.orders.Buy(s.ctx, alice, req)
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	sd := accounts[domain.AccountTypeSelfDirected].AccountID
	req.AccountID = &sd
	_, err = s.orders.Buy(s.ctx, bob, req)
	s.ErrorIs(err, apperrors.ErrAccountNotFound)

	_, err = s.orders.Sell(s.ctx, alice, s.order("MSFT", 1, 100))
	s.ErrorIs(err, apperrors.ErrHoldingNotFound)

	_, err = s.orders.Buy(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "AAPL", Quantity: domain.QuantityFromInt(1)})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.orders.Buy(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "AAPL", Quantity: domain.ZeroQuantity, PriceCents: ptr(int64(100))})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerFlowTestSuite) TestAverageCostAcrossBuys() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 100000)

	buys := []struct {
		qty   int64
		price int64
	}{{1, 1000}, {1, 2000}, {2, 3000}}
	var totalCost, totalQty int64
	var last *domain.OrderExecution
	for _, b := range buys {
		exec, err := s.orders.Buy(s.ctx, alice, s.order("MSFT", b.qty, b.price))
		s.Require().NoError(err)
		totalCost += b.qty * b.price
		totalQty += b.qty
		last = exec
	}
	s.Equal(totalCost/totalQty, last.Holding.AvgCostCents)
	s.Equal(int64(100000-totalCost), last.Account.BalanceCents)
}

func (s *LedgerFlowTestSuite) TestFractionalSellKeepsAverageCost() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 10000)

	qty, err := domain.ParseQuantity("1.5")
	s.Require().NoError(err)
	exec, err := s.orders.Buy(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "SPUS", Quantity: qty, PriceCents: ptr(int64(3333))})
	s.Require().NoError(err)
	s.Equal(int64(5000), exec.Transaction.AmountCents) // round(1.5 * 3333) = round(4999.5)

	part, err := domain.ParseQuantity("0.25")
	s.Require().NoError(err)
	exec, err = s.orders.Sell(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "SPUS", Quantity: part, PriceCents: ptr(int64(4000))})
	s.Require().NoError(err)
	s.Require().NotNil(exec.Holding)
	s.Equal("1.25", exec.Holding.Quantity.String())
	s.Equal(int64(3333), exec.Holding.AvgCostCents)
	s.Equal(int64(10000-5000+1000), exec.Account.BalanceCents)
}

func (s *LedgerFlowTestSuite) TestSubCentRemainderCanBeSold() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 1000)
	trading := accounts[domain.AccountTypeSelfDirected].AccountID

	qty, err := domain.ParseQuantity("1.000001")
	s.Require().NoError(err)
	_, err = s.orders.Buy(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "AAPL", Quantity: qty, PriceCents: ptr(int64(100))})
	s.Require().NoError(err)

	exec, err := s.orders.Sell(s.ctx, alice, s.order("AAPL", 1, 100))
	s.Require().NoError(err)
	s.Require().NotNil(exec.Holding)
	s.Equal("0.000001", exec.Holding.Quantity.String())
	balance := exec.Account.BalanceCents

	rest, err := domain.ParseQuantity("0.000001")
	s.Require().NoError(err)
	exec, err = s.orders.Sell(s.ctx, alice, dto.PlaceOrderRequest{Symbol: "AAPL", Quantity: rest, PriceCents: ptr(int64(100))})
	s.Require().NoError(err)
	s.Nil(exec.Holding)
	s.Equal(int64(0), exec.Transaction.AmountCents)
	s.Equal(domain.TransactionSell, exec.Transaction.Type)
	s.Equal(domain.OrderCompleted, exec.Order.Status)
	s.Equal(balance, s.balance(trading))

	holdings, err := s.portfolio.GetHoldings(s.ctx, alice, &trading)
	s.Require().NoError(err)
	s.Empty(holdings)
}

func (s *LedgerFlowTestSuite) TestConcurrentSells_OnlyOneSucceeds() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 30000)
	_, err := s.orders.Buy(s.ctx, alice, s.order("AAPL", 3, 10000))
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.orders.Sell(s.ctx, alice, s.order("AAPL", 2, 10000))
		}(i)
	}
	wg.Wait()

	var ok, short int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperrors.ErrInsufficientQuantity):
			short++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, ok)
	s.Equal(1, short)

	holdings, err := s.portfolio.GetHoldings(s.ctx, alice, nil)
	s.Require().NoError(err)
	s.Require().Len(holdings, 1)
	s.True(holdings[0].Quantity.Equal(domain.QuantityFromInt(1)))
	s.Equal(int64(20000), s.balance(accounts[domain.AccountTypeSelfDirected].AccountID))
}

func (s *LedgerFlowTestSuite) TestConcurrentMovementsConserveBalance() {
	accounts := s.onboard(alice)
	holding := accounts[domain.AccountTypeHolding].AccountID
	invest := accounts[domain.AccountTypeInvestment].AccountID
	sd := accounts[domain.AccountTypeSelfDirected].AccountID
	_, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 50000})
	s.Require().NoError(err)

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var deposited, withdrawn int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := int64(100 * (i + 1))
			if _, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: amount}); err == nil {
				mu.Lock()
				deposited += amount
				mu.Unlock()
			}
			if _, err := s.ledger.Withdraw(s.ctx, alice, dto.WithdrawRequest{AmountCents: amount / 2}); err == nil {
				mu.Lock()
				withdrawn += amount / 2
				mu.Unlock()
			}
			_, _ = s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: holding, ToAccountID: invest, AmountCents: 700})
			_, _ = s.ledger.Transfer(s.ctx, alice, dto.TransferRequest{FromAccountID: invest, ToAccountID: sd, AmountCents: 300})
		}(i)
	}
	wg.Wait()

	total := s.balance(holding) + s.balance(invest) + s.balance(sd)
	s.Equal(50000+deposited-withdrawn, total)
	for _, id := range []string{holding, invest, sd} {
		s.GreaterOrEqual(s.balance(id), int64(0))
	}
}

func (s *LedgerFlowTestSuite) TestListOrders_Filters() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 10000)
	_, err := s.orders.Buy(s.ctx, alice, s.order("AAPL", 1, 1000))
	s.Require().NoError(err)
	_, err = s.orders.Buy(s.ctx, alice, s.order("MSFT", 1, 1000))
	s.Require().NoError(err)

	orders, err := s.orders.ListOrders(s.ctx, alice, dto.ListOrdersParams{Status: ptr("completed"), Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal("MSFT", orders[0].Symbol)

	orders, err = s.orders.ListOrders(s.ctx, alice, dto.ListOrdersParams{Status: ptr("pending")})
	s.Require().NoError(err)
	s.Empty(orders)

	_, err = s.orders.ListOrders(s.ctx, alice, dto.ListOrdersParams{Status: ptr("rejected")})
	s.ErrorIs(err, apperrors.ErrValidation)

	orders, err = s.orders.ListOrders(s.ctx, bob, dto.ListOrdersParams{})
	s.Require().NoError(err)
	s.Empty(orders)
}
