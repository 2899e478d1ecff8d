package services

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
)

// ErrWeightIsRequiredForPricing is returned when weight-based pricing is
// requested without a valid positive weight. The validation gate prevents
// this from happening on the approval path; the error exists so the fee
// calculator never silently produces a zero fee.
var ErrWeightIsRequiredForPricing = errors.New("weight must be positive when no special item rule applies")

// FeeCalculator computes the cost of a package from its weight, an optional
// special-item override, and the fee schedule in effect.
//
// Pricing rules:
//   - With a special-item rule, the variable fee is the rule's fixed fee and
//     weight is ignored entirely.
//   - Without one, the variable fee is weight multiplied by the schedule's
//     per-pound rate.
//   - Total = service fee + variable fee, rounded to cents once at the end.
//
// The calculator is deterministic and has no side effects: identical inputs
// always yield an identical Fee.
type FeeCalculator struct{}

// NewFeeCalculator creates a FeeCalculator.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// Calculate computes the Fee for a package.
//
// rule may be nil, meaning weight-based pricing applies; in that case the
// weight must be a valid positive Weight or ErrWeightIsRequiredForPricing is
// returned. schedule must be a constructed FeeSchedule.
func (FeeCalculator) Calculate(
	weight kernel.Weight,
	rule *pricing.SpecialItemRule,
	schedule *pricing.FeeSchedule,
) (pricing.Fee, error) {
	if err := schedule.Validate(); err != nil {
		return pricing.Fee{}, err
	}

	if rule != nil {
		if err := rule.Validate(); err != nil {
			return pricing.Fee{}, err
		}

		ruleID := rule.ID()
		return pricing.NewFee(schedule.ServiceFee(), rule.FixedFee(), &ruleID)
	}

	if err := weight.Validate(); err != nil {
		return pricing.Fee{}, ErrWeightIsRequiredForPricing
	}

	variable := schedule.PerPoundRate().MulWeight(weight)
	return pricing.NewFee(schedule.ServiceFee(), variable, nil)
}
