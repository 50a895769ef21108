package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a last-price observation from the market data provider, in major currency units.
type Quote struct {
	Symbol        string           `json:"symbol"`
	Price         decimal.Decimal  `json:"price"`
	Currency      string           `json:"currency"`
	PreviousClose *decimal.Decimal `json:"previousClose,omitempty"`
	ChangePercent *decimal.Decimal `json:"changePercent,omitempty"`
	AsOf          time.Time        `json:"asOf"`
}

// PriceCents converts the quote price to minor units, rounded half-up.
func (q Quote) PriceCents() int64 {
	return RoundCents(q.Price.Shift(2))
}
