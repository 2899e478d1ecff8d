package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSetRequestWeightCommandIsNotConstructed = errors.New(
		"SetRequestWeightCommand must be created via NewSetRequestWeightCommand constructor",
	)
	ErrReviewWeightIsNegative = errors.New("review weight cannot be negative")
)

// SetRequestWeightCommand records the staff-measured weight on a pending
// request. Setting a new value clears the weight confirmation flag; zero is
// accepted here and rejected at confirmation time.
type SetRequestWeightCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	weight     decimal.Decimal
	reviewerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetRequestWeightCommand creates a command to set the staff weight value.
func NewSetRequestWeightCommand(
	requestID kernel.UUID,
	weight decimal.Decimal,
	reviewerID kernel.UUID,
) (SetRequestWeightCommand, error) {
	cmd := SetRequestWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setWeight(weight),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return SetRequestWeightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRequestWeightCommand) Validate() error {
	return c.guard.Validate(ErrSetRequestWeightCommandIsNotConstructed)
}

// RequestID returns the identifier of the request under review.
func (c SetRequestWeightCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Weight returns the staff-measured weight in pounds.
func (c SetRequestWeightCommand) Weight() decimal.Decimal {
	return c.weight
}

// ReviewerID returns the staff member performing the review.
func (c SetRequestWeightCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c *SetRequestWeightCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SetRequestWeightCommand) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return ErrReviewWeightIsNegative
	}

	c.weight = weight
	return nil
}

func (c *SetRequestWeightCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}
