package pricing

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
)

// ErrFeeIsNotConstructed is returned when a Fee was not created via NewFee.
var ErrFeeIsNotConstructed = errors.New("Fee must be created via NewFee")

// Fee is the computed cost of a package: the flat service fee, the variable
// part (weight-based or a special-item fixed fee), and their total.
//
// The total is rounded to cents exactly once, from the unrounded service and
// variable amounts; it is never re-derived from the individually rounded
// parts. Fees are computed only when a request is approved or when weight is
// explicitly corrected, never recomputed on read.
type Fee struct {
	serviceFee    kernel.Money
	variableFee   kernel.Money
	total         kernel.Money
	appliedRuleID *kernel.UUID

	isConstructed bool
}

// NewFee creates a Fee from the unrounded service and variable amounts.
// appliedRuleID records the SpecialItemRule that produced the variable fee,
// or nil for weight-based pricing.
func NewFee(serviceFee, variableFee kernel.Money, appliedRuleID *kernel.UUID) (Fee, error) {
	if err := errors.Join(
		serviceFee.Validate(),
		variableFee.Validate(),
	); err != nil {
		return Fee{}, err
	}
	if appliedRuleID != nil {
		if err := appliedRuleID.Validate(); err != nil {
			return Fee{}, err
		}
	}

	return Fee{
		serviceFee:    serviceFee.RoundToCents(),
		variableFee:   variableFee.RoundToCents(),
		total:         serviceFee.Add(variableFee).RoundToCents(),
		appliedRuleID: appliedRuleID,
		isConstructed: true,
	}, nil
}

// RestoreFee reconstructs a Fee from persistence. The stored total is kept
// as-is; re-deriving it from the already-rounded parts could shift it by a
// cent.
func RestoreFee(serviceFee, variableFee, total kernel.Money, appliedRuleID *kernel.UUID) (Fee, error) {
	if err := errors.Join(
		serviceFee.Validate(),
		variableFee.Validate(),
		total.Validate(),
	); err != nil {
		return Fee{}, err
	}
	if appliedRuleID != nil {
		if err := appliedRuleID.Validate(); err != nil {
			return Fee{}, err
		}
	}

	return Fee{
		serviceFee:    serviceFee,
		variableFee:   variableFee,
		total:         total,
		appliedRuleID: appliedRuleID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Fee was created via NewFee.
func (f Fee) Validate() error {
	if !f.isConstructed {
		return ErrFeeIsNotConstructed
	}
	return nil
}

// ServiceFee returns the flat service fee portion.
func (f Fee) ServiceFee() kernel.Money {
	return f.serviceFee
}

// VariableFee returns the variable portion: weight-based or the special-item
// fixed fee.
func (f Fee) VariableFee() kernel.Money {
	return f.variableFee
}

// Total returns the rounded sum of service and variable fees.
func (f Fee) Total() kernel.Money {
	return f.total
}

// AppliedRuleID returns the SpecialItemRule that set the variable fee, or nil
// when the package was priced by weight.
func (f Fee) AppliedRuleID() *kernel.UUID {
	return f.appliedRuleID
}
