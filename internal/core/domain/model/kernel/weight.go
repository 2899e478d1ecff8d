package kernel

import (
	"fmt"

	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// maxWeightPounds bounds a single package weight. Anything heavier goes by
// freight and never enters this system.
var maxWeightPounds = decimal.NewFromInt(500)

// Weight is a value object representing the authoritative weight of a package
// in pounds. Weight must be strictly positive: a zero or negative weight can
// never be billed and is rejected at construction.
//
// Weight uses exact decimal arithmetic so that fee computation never
// accumulates binary floating point error.
//
// The zero value of Weight is invalid and must be constructed via NewWeight
// or WeightFromString.
type Weight struct {
	pounds decimal.Decimal

	isConstructed bool
}

// NewWeight creates a Weight from a decimal pounds value.
// The value must be greater than zero and not exceed the single-package limit.
func NewWeight(pounds decimal.Decimal) (Weight, error) {
	if !pounds.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is not greater than 0", pounds))
	}
	if pounds.GreaterThan(maxWeightPounds) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", pounds.String(), "0", maxWeightPounds.String())
	}

	return Weight{pounds: pounds, isConstructed: true}, nil
}

// WeightFromString parses a Weight from its decimal string representation,
// e.g. "3.5". Used when reconstructing from persistence or parsing staff input.
func WeightFromString(s string) (Weight, error) {
	pounds, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(pounds)
}

// Pounds returns the weight value in pounds.
func (w Weight) Pounds() decimal.Decimal {
	return w.pounds
}

// String returns the decimal string representation of the weight.
func (w Weight) String() string {
	return w.pounds.String()
}

// IsEqual compares two weights for numeric equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.pounds.Equal(other.pounds)
}

// Validate checks if the Weight was properly constructed.
func (w Weight) Validate() error {
	if !w.isConstructed {
		return errs.NewValueIsRequiredError("Weight must be created via NewWeight or WeightFromString")
	}
	return nil
}
