package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/amanah_ledger/internal/apperrors"
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/core/services"
	"github.com/SscSPs/amanah_ledger/internal/dto"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_OraclePricingIgnoresClientPrice(t *testing.T) {
	ctx := context.Background()
	_, repos := newSQLiteRepos(t)
	halal := services.NewHalalService(repos.HalalRepo)
	_, err := halal.SeedSymbols(ctx, testHalalSymbols)
	require.NoError(t, err)

	ledger := services.NewLedgerService(repos.TxManager, repos.AccountRepo)
	accounts, err := ledger.OpenDefaultAccounts(ctx, "user-1", dto.OpenAccountsRequest{})
	require.NoError(t, err)
	_, err = ledger.Deposit(ctx, "user-1", dto.DepositRequest{AmountCents: 50000})
	require.NoError(t, err)
	_, err = ledger.Transfer(ctx, "user-1", dto.TransferRequest{
		FromAccountID: accounts[0].AccountID,
		ToAccountID:   accounts[2].AccountID,
		AmountCents:   50000,
	})
	require.NoError(t, err)

	oracle := &stubOracle{prices: map[string]string{"AAPL": "123.455"}}
	orders := services.NewOrderService(repos.TxManager, repos.OrderRepo, halal,
		services.WithPriceOracle(oracle),
		services.WithPricingMode(config.PricingOracle),
		services.WithOrderMetrics(metrics.NewCollector(nil)))

	exec, err := orders.Buy(ctx, "user-1", dto.PlaceOrderRequest{
		Symbol:     "AAPL",
		Quantity:   domain.QuantityFromInt(2),
		PriceCents: ptr(int64(1)),
	})
	require.NoError(t, err)
	require.NotNil(t, exec.Order.ExecutionPriceCents)
	assert.Equal(t, int64(12346), *exec.Order.ExecutionPriceCents)
	assert.Equal(t, int64(24692), exec.Transaction.AmountCents)
	assert.Equal(t, int64(50000-24692), exec.Account.BalanceCents)

	_, err = orders.Buy(ctx, "user-1", dto.PlaceOrderRequest{Symbol: "MSFT", Quantity: domain.QuantityFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrPriceUnavailable)

	listed, err := orders.ListOrders(ctx, "user-1", dto.ListOrdersParams{})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestOrderService_RejectsZeroCostBuy(t *testing.T) {
	ctx := context.Background()
	_, repos := newSQLiteRepos(t)
	halal := services.NewHalalService(repos.HalalRepo)
	_, err := halal.SeedSymbols(ctx, testHalalSymbols)
	require.NoError(t, err)

	orders := services.NewOrderService(repos.TxManager, repos.OrderRepo, halal, services.WithPricingMode(config.PricingClient))
	tiny, err := domain.ParseQuantity("0.000001")
	require.NoError(t, err)

	_, err = orders.Buy(ctx, "user-1", dto.PlaceOrderRequest{Symbol: "AAPL", Quantity: tiny, PriceCents: ptr(int64(100))})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
