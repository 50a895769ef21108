package mapping

import (
	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/SscSPs/amanah_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		FromAccountID: toNullString(d.FromAccountID),
		ToAccountID:   toNullString(d.ToAccountID),
		AmountCents:   d.AmountCents,
		CurrencyCode:  d.CurrencyCode,
		Symbol:        toNullString(d.Symbol),
		Quantity:      toNullQuantity(d.Quantity),
		PriceCents:    toNullInt64(d.PriceCents),
		Status:        string(d.Status),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		FromAccountID: fromNullString(m.FromAccountID),
		ToAccountID:   fromNullString(m.ToAccountID),
		AmountCents:   m.AmountCents,
		CurrencyCode:  m.CurrencyCode,
		Symbol:        fromNullString(m.Symbol),
		Quantity:      fromNullQuantity(m.Quantity),
		PriceCents:    fromNullInt64(m.PriceCents),
		Status:        domain.TransactionStatus(m.Status),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelHolding converts a domain Holding to a model Holding
func ToModelHolding(d domain.Holding) models.Holding {
	return models.Holding{
		HoldingID:    d.HoldingID,
		UserID:       d.UserID,
		AccountID:    d.AccountID,
		Symbol:       d.Symbol,
		Quantity:     d.Quantity.Decimal(),
		AvgCostCents: d.AvgCostCents,
		Source:       string(d.Source),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainHolding converts a model Holding to a domain Holding
func ToDomainHolding(m models.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:    m.HoldingID,
		UserID:       m.UserID,
		AccountID:    m.AccountID,
		Symbol:       m.Symbol,
		Quantity:     domain.NewQuantity(m.Quantity),
		AvgCostCents: m.AvgCostCents,
		Source:       domain.HoldingSource(m.Source),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainHoldingWithAccount converts a joined holding row.
func ToDomainHoldingWithAccount(m models.HoldingWithAccount) domain.HoldingWithAccount {
	return domain.HoldingWithAccount{
		Holding: ToDomainHolding(m.Holding),
		Account: domain.AccountSummary{
			AccountID:   m.AccountID,
			AccountType: domain.AccountType(m.AccountType),
			Name:        m.AccountName,
		},
	}
}

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:             d.OrderID,
		UserID:              d.UserID,
		AccountID:           d.AccountID,
		Symbol:              d.Symbol,
		Side:                string(d.Side),
		OrderType:           string(d.OrderType),
		Quantity:            d.Quantity.Decimal(),
		Status:              string(d.Status),
		ExecutionPriceCents: toNullInt64(d.ExecutionPriceCents),
		ExecutionQuantity:   toNullQuantity(d.ExecutionQuantity),
		TransactionID:       toNullString(d.TransactionID),
		CreatedAt:           d.CreatedAt,
		CompletedAt:         toNullTime(d.CompletedAt),
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:             m.OrderID,
		UserID:              m.UserID,
		AccountID:           m.AccountID,
		Symbol:              m.Symbol,
		Side:                domain.OrderSide(m.Side),
		OrderType:           domain.OrderType(m.OrderType),
		Quantity:            domain.NewQuantity(m.Quantity),
		Status:              domain.OrderStatus(m.Status),
		ExecutionPriceCents: fromNullInt64(m.ExecutionPriceCents),
		ExecutionQuantity:   fromNullQuantity(m.ExecutionQuantity),
		TransactionID:       fromNullString(m.TransactionID),
		CreatedAt:           m.CreatedAt,
		CompletedAt:         fromNullTime(m.CompletedAt),
	}
}
