package kernel

import (
	"fmt"

	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative USD amount.
// It wraps shopspring/decimal so that fee arithmetic is exact; rounding to
// the currency's minor unit happens once, at the end of a computation,
// via RoundToCents.
//
// The zero value of Money is invalid and must be constructed via NewMoney,
// MoneyFromString, or MoneyFromFloat.
type Money struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewMoney creates a Money from a decimal amount. Negative amounts are
// rejected: the domain has no notion of negative fees or credits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "5.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MoneyFromFloat creates a Money from a float amount. Intended for test
// fixtures and external inputs already limited to two decimal places.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulWeight returns the amount multiplied by a weight, as used for
// per-pound pricing. The result is not rounded; callers round the final
// total once via RoundToCents.
func (m Money) MulWeight(w Weight) Money {
	return Money{amount: m.amount.Mul(w.Pounds()), isConstructed: true}
}

// RoundToCents rounds the amount to two decimal places using half-up
// rounding. For the non-negative amounts Money permits, decimal's
// round-half-away-from-zero is exactly half-up.
func (m Money) RoundToCents() Money {
	return Money{amount: m.amount.Round(2), isConstructed: true}
}

// String returns the amount formatted with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks if the Money was properly constructed.
func (m Money) Validate() error {
	if !m.isConstructed {
		return errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or MoneyFromFloat")
	}
	return nil
}
