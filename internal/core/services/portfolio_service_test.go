package services_test

import (
	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func (s *LedgerFlowTestSuite) TestListTransactions_Pages() {
	accounts := s.onboard(alice)
	holding := accounts[domain.AccountTypeHolding].AccountID
	for i := 1; i <= 5; i++ {
		_, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: int64(i * 100)})
		s.Require().NoError(err)
	}

	var seen []int64
	params := dto.ListTransactionsParams{AccountID: &holding, Limit: 2}
	for page := 0; page < 5; page++ {
		resp, err := s.portfolio.ListTransactions(s.ctx, alice, params)
		s.Require().NoError(err)
		for _, t := range resp.Transactions {
			seen = append(seen, t.AmountCents)
		}
		if resp.NextToken == nil {
			break
		}
		params.NextToken = resp.NextToken
	}
	s.Equal([]int64{500, 400, 300, 200, 100}, seen)

	_, err := s.portfolio.ListTransactions(s.ctx, alice, dto.ListTransactionsParams{NextToken: ptr("not-a-token!")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.portfolio.ListTransactions(s.ctx, bob, dto.ListTransactionsParams{AccountID: &holding})
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (s *LedgerFlowTestSuite) TestListTransactions_AccountMatchesEitherLeg() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 1000)
	sd := accounts[domain.AccountTypeSelfDirected].AccountID

	resp, err := s.portfolio.ListTransactions(s.ctx, alice, dto.ListTransactionsParams{AccountID: &sd})
	s.Require().NoError(err)
	s.Require().Len(resp.Transactions, 1)
	s.Equal(domain.TransactionTransfer, resp.Transactions[0].Type)
	s.Nil(resp.NextToken)
}

func (s *LedgerFlowTestSuite) TestNetWorthAndAnalytics() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 10000)
	_, err := s.ledger.Deposit(s.ctx, alice, dto.DepositRequest{AmountCents: 2500})
	s.Require().NoError(err)
	_, err = s.orders.Buy(s.ctx, alice, s.order("AAPL", 2, 4000))
	s.Require().NoError(err)

	nw, err := s.portfolio.GetNetWorth(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(4500), nw.CashCents)
	s.Equal(int64(8000), nw.InvestmentsCents)
	s.Equal(int64(12500), nw.TotalCents)

	report, err := s.portfolio.GetAnalytics(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(12500), report.TotalPortfolioCents)
	s.Len(report.Accounts, 3)
	for _, a := range report.Accounts {
		if a.AccountType == domain.AccountTypeSelfDirected {
			s.Equal(int64(2000), a.CashCents)
			s.Require().Len(a.Positions, 1)
			s.Equal(int64(8000), a.Positions[0].ValueCents)
			s.Equal(int64(10000), a.TotalValueCents)
		}
	}
	s.Require().NotEmpty(report.Allocation)
	total := decimal.Zero
	for _, slice := range report.Allocation {
		total = total.Add(slice.Percent)
	}
	s.True(total.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.RequireFromString("0.05")))

	holdings, err := s.portfolio.GetHoldings(s.ctx, alice, ptr(accounts[domain.AccountTypeInvestment].AccountID))
	s.Require().NoError(err)
	s.Empty(holdings)

	holdings, err = s.portfolio.GetHoldings(s.ctx, alice, ptr(accounts[domain.AccountTypeSelfDirected].AccountID))
	s.Require().NoError(err)
	s.Require().Len(holdings, 1)
	s.Equal(domain.AccountTypeSelfDirected, holdings[0].Account.AccountType)

	_, err = s.portfolio.GetHoldings(s.ctx, bob, ptr(accounts[domain.AccountTypeSelfDirected].AccountID))
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (s *LedgerFlowTestSuite) TestReadViewsAreStable() {
	accounts := s.onboard(alice)
	s.fundTrading(alice, accounts, 10000)
	_, err := s.orders.Buy(s.ctx, alice, s.order("SPUS", 3, 1000))
	s.Require().NoError(err)

	first, err := s.portfolio.GetHoldings(s.ctx, alice, nil)
	s.Require().NoError(err)
	second, err := s.portfolio.GetHoldings(s.ctx, alice, nil)
	s.Require().NoError(err)
	s.Equal(first, second)

	o1, err := s.orders.ListOrders(s.ctx, alice, dto.ListOrdersParams{})
	s.Require().NoError(err)
	o2, err := s.orders.ListOrders(s.ctx, alice, dto.ListOrdersParams{})
	s.Require().NoError(err)
	s.Equal(o1, o2)
}

func (s *LedgerFlowTestSuite) TestWatchlistAndProfile() {
	item, err := s.watchlist.AddToWatchlist(s.ctx, alice, " msft ")
	s.Require().NoError(err)
	s.Equal("MSFT", item.Symbol)

	again, err := s.watchlist.AddToWatchlist(s.ctx, alice, "MSFT")
	s.Require().NoError(err)
	s.Equal(item.ItemID, again.ItemID)

	items, err := s.watchlist.ListWatchlist(s.ctx, alice)
	s.Require().NoError(err)
	s.Len(items, 1)

	s.Require().NoError(s.watchlist.RemoveFromWatchlist(s.ctx, alice, "msft"))
	s.ErrorIs(s.watchlist.RemoveFromWatchlist(s.ctx, alice, "MSFT"), apperrors.ErrNotFound)

	profiles := s.profile
	p, err := profiles.GetProfile(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(alice, p.UserID)
	s.Nil(p.RiskProfile)

	p, err = profiles.UpdateProfile(s.ctx, alice, dto.UpdateProfileRequest{RiskProfile: "growth"})
	s.Require().NoError(err)
	s.Require().NotNil(p.RiskProfile)
	s.Equal(domain.RiskGrowth, *p.RiskProfile)

	_, err = profiles.UpdateProfile(s.ctx, alice, dto.UpdateProfileRequest{RiskProfile: "yolo"})
	s.ErrorIs(err, apperrors.ErrValidation)
}
