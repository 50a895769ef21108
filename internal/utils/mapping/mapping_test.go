package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_TradeFields(t *testing.T) {
	from := "acc-1"
	symbol := "AAPL"
	qty := domain.QuantityFromFloat(1.5)
	price := int64(15000)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	d := domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		Type:          domain.TransactionBuy,
		FromAccountID: &from,
		AmountCents:   22500,
		CurrencyCode:  "USD",
		Symbol:        &symbol,
		Quantity:      &qty,
		PriceCents:    &price,
		Status:        domain.TransactionCompleted,
		CreatedAt:     now,
	}

	m := ToModelTransaction(d)
	assert.True(t, m.FromAccountID.Valid)
	assert.False(t, m.ToAccountID.Valid)
	assert.Equal(t, "1.5", m.Quantity.Decimal.String())

	back := ToDomainTransaction(m)
	require.NotNil(t, back.Quantity)
	assert.True(t, qty.Equal(*back.Quantity))
	assert.Nil(t, back.ToAccountID)
	assert.Equal(t, price, *back.PriceCents)
}

func TestTransactionMapping_CashFieldsStayNull(t *testing.T) {
	to := "acc-1"
	m := ToModelTransaction(domain.Transaction{TransactionID: "t", Type: domain.TransactionDeposit, ToAccountID: &to, AmountCents: 100})
	assert.False(t, m.Symbol.Valid)
	assert.False(t, m.Quantity.Valid)
	assert.False(t, m.PriceCents.Valid)

	back := ToDomainTransaction(m)
	assert.Nil(t, back.Symbol)
	assert.Nil(t, back.Quantity)
	assert.Nil(t, back.PriceCents)
}

func TestOrderMapping_PendingHasNoExecution(t *testing.T) {
	d := domain.Order{OrderID: "o", Quantity: domain.QuantityFromInt(2), Status: domain.OrderPending}
	back := ToDomainOrder(ToModelOrder(d))
	assert.Nil(t, back.ExecutionPriceCents)
	assert.Nil(t, back.ExecutionQuantity)
	assert.Nil(t, back.CompletedAt)
	assert.True(t, back.Quantity.Equal(domain.QuantityFromInt(2)))
}

func TestProfileMapping(t *testing.T) {
	risk := domain.RiskGrowth
	m := ToModelInvestmentProfile(domain.InvestmentProfile{UserID: "u", RiskProfile: &risk})
	assert.Equal(t, "growth", m.RiskProfile.String)
	assert.False(t, m.RebalanceLogic.Valid)

	back := ToDomainInvestmentProfile(m)
	require.NotNil(t, back.RiskProfile)
	assert.Equal(t, domain.RiskGrowth, *back.RiskProfile)
}
