package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrConfirmRequestWeightCommandIsNotConstructed = errors.New(
	"ConfirmRequestWeightCommand must be created via NewConfirmRequestWeightCommand constructor",
)

// ConfirmRequestWeightCommand confirms the previously set staff weight.
// Confirmation fails if the recorded weight is not positive.
type ConfirmRequestWeightCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	reviewerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmRequestWeightCommand creates a command to confirm the staff weight.
func NewConfirmRequestWeightCommand(
	requestID kernel.UUID,
	reviewerID kernel.UUID,
) (ConfirmRequestWeightCommand, error) {
	cmd := ConfirmRequestWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return ConfirmRequestWeightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRequestWeightCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRequestWeightCommandIsNotConstructed)
}

// RequestID returns the identifier of the request under review.
func (c ConfirmRequestWeightCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ReviewerID returns the staff member performing the review.
func (c ConfirmRequestWeightCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c *ConfirmRequestWeightCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ConfirmRequestWeightCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}
