package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuantityPlaces is the fixed precision of share quantities.
const QuantityPlaces = 6

// quantityEpsilon is the threshold under which a holding counts as fully liquidated.
var quantityEpsilon = decimal.New(1, -9)

// Quantity is a fractional share amount held at QuantityPlaces decimal places.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity rounds d to QuantityPlaces.
func NewQuantity(d decimal.Decimal) Quantity {
	return Quantity{value: d.Round(QuantityPlaces)}
}

// QuantityFromFloat converts a float input (e.g. JSON number) to a Quantity.
func QuantityFromFloat(f float64) Quantity {
	return NewQuantity(decimal.NewFromFloat(f))
}

// QuantityFromInt returns a whole-unit Quantity.
func QuantityFromInt(n int64) Quantity {
	return Quantity{value: decimal.NewFromInt(n)}
}

// ParseQuantity parses a decimal string.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return NewQuantity(d), nil
}

// ZeroQuantity is the empty quantity.
var ZeroQuantity = Quantity{value: decimal.Zero}

func (q Quantity) Decimal() decimal.Decimal     { return q.value }
func (q Quantity) Add(o Quantity) Quantity      { return NewQuantity(q.value.Add(o.value)) }
func (q Quantity) Sub(o Quantity) Quantity      { return NewQuantity(q.value.Sub(o.value)) }
func (q Quantity) Equal(o Quantity) bool        { return q.value.Equal(o.value) }
func (q Quantity) LessThan(o Quantity) bool     { return q.value.LessThan(o.value) }
func (q Quantity) GreaterThan(o Quantity) bool  { return q.value.GreaterThan(o.value) }
func (q Quantity) IsPositive() bool             { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool             { return q.value.IsNegative() }
func (q Quantity) IsZero() bool                 { return q.value.IsZero() }
func (q Quantity) String() string               { return q.value.String() }
func (q Quantity) InexactFloat64() float64      { return q.value.InexactFloat64() }
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
func (q Quantity) StringFixed() string          { return q.value.StringFixed(QuantityPlaces) }
func (q Quantity) Cmp(o Quantity) int           { return q.value.Cmp(o.value) }
func (q Quantity) Neg() Quantity                { return Quantity{value: q.value.Neg()} }

// Mul returns the unrounded product with d.
func (q Quantity) Mul(d decimal.Decimal) decimal.Decimal {
	return q.value.Mul(d)
}

// UnmarshalJSON accepts numbers and numeric strings.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*q = NewQuantity(d)
	return nil
}

// IsDust reports whether the quantity is below the liquidation threshold.
func (q Quantity) IsDust() bool {
	return q.value.Abs().LessThan(quantityEpsilon)
}

// RoundCents rounds a cents amount half away from zero. For the non-negative amounts
// of the ledger this is round-half-up.
func RoundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// NotionalCents is round(q * priceCents).
func NotionalCents(q Quantity, priceCents int64) int64 {
	return RoundCents(q.Mul(decimal.NewFromInt(priceCents)))
}
