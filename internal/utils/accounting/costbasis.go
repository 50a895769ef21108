package accounting

import (
	"fmt"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuyResult is the position after a buy is applied.
type BuyResult struct {
	Quantity     domain.Quantity
	AvgCostCents int64
	Opened       bool // true when no prior position existed
}

// ApplyBuy folds a buy of qty at priceCents per unit into an existing position (nil if none).
//
//	newQty = qty0 + qty
//	newAvg = round((avg0*qty0 + price*qty) / newQty)
func ApplyBuy(existing *domain.Holding, qty domain.Quantity, priceCents int64) (BuyResult, error) {
	if !qty.IsPositive() {
		return BuyResult{}, fmt.Errorf("buy quantity must be positive, got %s", qty)
	}
	if priceCents <= 0 {
		return BuyResult{}, fmt.Errorf("buy price must be positive, got %d", priceCents)
	}
	if existing == nil {
		return BuyResult{Quantity: qty, AvgCostCents: priceCents, Opened: true}, nil
	}

	newQty := existing.Quantity.Add(qty)
	total := existing.Quantity.Mul(decimal.NewFromInt(existing.AvgCostCents)).
		Add(qty.Mul(decimal.NewFromInt(priceCents)))
	avg := total.Div(newQty.Decimal())
	return BuyResult{Quantity: newQty, AvgCostCents: domain.RoundCents(avg)}, nil
}

// SellResult is the position after a sell is applied.
type SellResult struct {
	Quantity   domain.Quantity
	Liquidated bool // the holding row must be deleted
}

// ApplySell shrinks a position by qty. Average cost is unchanged.
// Callers check qty <= existing.Quantity first; a larger qty is an error here.
func ApplySell(existing domain.Holding, qty domain.Quantity) (SellResult, error) {
	if !qty.IsPositive() {
		return SellResult{}, fmt.Errorf("sell quantity must be positive, got %s", qty)
	}
	if qty.GreaterThan(existing.Quantity) {
		return SellResult{}, fmt.Errorf("sell quantity %s exceeds holding %s", qty, existing.Quantity)
	}
	remaining := existing.Quantity.Sub(qty)
	if remaining.IsDust() {
		return SellResult{Quantity: domain.ZeroQuantity, Liquidated: true}, nil
	}
	return SellResult{Quantity: remaining}, nil
}
