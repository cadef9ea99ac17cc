package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount for display. Projections are computed in
// float64; Money is only used once a value leaves the engine.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. The value must be
// finite; use FromFloat when that is not guaranteed.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromFloat converts value to Money, reporting false for NaN or infinities
// (a long projection at a high rate can overflow float64).
func FromFloat(value float64) (Money, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return NewMoney(value), true
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Truncate drops the fractional currency units (1050000.99 -> 1050000)
func (m Money) Truncate() Money {
	return Money{m.Decimal.Truncate(0)}
}

// WholeDigits returns the truncated amount's absolute value as plain digits
// with no grouping, and whether the amount is negative. Any magnitude a
// float64 can hold is rendered exactly.
func (m Money) WholeDigits() (digits string, negative bool) {
	t := m.Truncate().Decimal
	return t.Abs().String(), t.Sign() < 0
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
