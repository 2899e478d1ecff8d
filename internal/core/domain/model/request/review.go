package request

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrWeightIsNotConfirmed is the reason code returned when approval is
	// attempted before staff confirmed the authoritative weight.
	ErrWeightIsNotConfirmed = errors.New("weight is not confirmed")

	// ErrCategoryIsNotConfirmed is the reason code returned when approval is
	// attempted before staff confirmed the category.
	ErrCategoryIsNotConfirmed = errors.New("category is not confirmed")

	// ErrWeightIsNotPositive is the reason code returned when the recorded
	// weight is zero or missing. Confirmation and approval both require a
	// strictly positive weight.
	ErrWeightIsNotPositive = errors.New("weight must be greater than 0")

	// ErrCategoryIsNotSet is returned when confirming a category that was
	// never supplied.
	ErrCategoryIsNotSet = errors.New("category is not set")
)

// Review is the staff-side validation state of a request: the authoritative
// weight and category values, each with an independent confirmation flag.
//
// The central rule of the gate: editing a value clears that value's own
// confirmation flag and only that flag, forcing re-confirmation. Approval is
// possible only when both flags are set and the weight is positive. Under
// concurrent edits the aggregate is persisted last-writer-wins as a whole, so
// a SetWeight arriving after a ConfirmWeight always leaves the flag cleared.
type Review struct {
	weight          decimal.Decimal
	weightConfirmed bool

	category          string
	categoryConfirmed bool

	reviewedBy *kernel.UUID
}

// NewReview creates an empty Review with nothing confirmed.
func NewReview() Review {
	return Review{}
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(
	weight decimal.Decimal,
	weightConfirmed bool,
	category string,
	categoryConfirmed bool,
	reviewedBy *kernel.UUID,
) Review {
	return Review{
		weight:            weight,
		weightConfirmed:   weightConfirmed,
		category:          category,
		categoryConfirmed: categoryConfirmed,
		reviewedBy:        reviewedBy,
	}
}

// Weight returns the staff-entered weight in pounds. Zero means not yet
// weighed.
func (r Review) Weight() decimal.Decimal {
	return r.weight
}

// IsWeightConfirmed reports whether the weight value has been confirmed.
func (r Review) IsWeightConfirmed() bool {
	return r.weightConfirmed
}

// Category returns the staff-entered category. Empty means not yet set.
func (r Review) Category() string {
	return r.category
}

// IsCategoryConfirmed reports whether the category value has been confirmed.
func (r Review) IsCategoryConfirmed() bool {
	return r.categoryConfirmed
}

// ReviewedBy returns the staff member who last touched the review, or nil.
func (r Review) ReviewedBy() *kernel.UUID {
	return r.reviewedBy
}

// setWeight records a new weight value and clears the weight confirmation
// flag. The category flag is untouched. A zero weight is accepted here (the
// scale may genuinely read zero for an empty submission) but can never be
// confirmed.
func (r *Review) setWeight(weight decimal.Decimal, reviewer kernel.UUID) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is negative", weight))
	}

	r.weight = weight
	r.weightConfirmed = false
	r.reviewedBy = &reviewer
	return nil
}

// confirmWeight sets the weight confirmation flag. Rejects a non-positive
// weight at confirmation time.
func (r *Review) confirmWeight(reviewer kernel.UUID) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if !r.weight.IsPositive() {
		return ErrWeightIsNotPositive
	}

	r.weightConfirmed = true
	r.reviewedBy = &reviewer
	return nil
}

// setCategory records a new category value and clears the category
// confirmation flag. The weight flag is untouched.
func (r *Review) setCategory(category string, reviewer kernel.UUID) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	r.category = category
	r.categoryConfirmed = false
	r.reviewedBy = &reviewer
	return nil
}

// confirmCategory sets the category confirmation flag.
func (r *Review) confirmCategory(reviewer kernel.UUID) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if r.category == "" {
		return ErrCategoryIsNotSet
	}

	r.categoryConfirmed = true
	r.reviewedBy = &reviewer
	return nil
}

// readyForApproval returns nil when the gate is satisfied, or the specific
// reason code blocking approval: weight unconfirmed, category unconfirmed,
// or weight not positive. Reason codes are checked in that order so the UI
// can guide correction one step at a time.
func (r Review) readyForApproval() error {
	if !r.weightConfirmed {
		return ErrWeightIsNotConfirmed
	}
	if !r.categoryConfirmed {
		return ErrCategoryIsNotConfirmed
	}
	if !r.weight.IsPositive() {
		return ErrWeightIsNotPositive
	}
	return nil
}
