package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrConfirmRequestCategoryCommandIsNotConstructed = errors.New(
	"ConfirmRequestCategoryCommand must be created via NewConfirmRequestCategoryCommand constructor",
)

// ConfirmRequestCategoryCommand confirms the previously set staff category.
type ConfirmRequestCategoryCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	reviewerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmRequestCategoryCommand creates a command to confirm the staff category.
func NewConfirmRequestCategoryCommand(
	requestID kernel.UUID,
	reviewerID kernel.UUID,
) (ConfirmRequestCategoryCommand, error) {
	cmd := ConfirmRequestCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return ConfirmRequestCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRequestCategoryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRequestCategoryCommandIsNotConstructed)
}

// RequestID returns the identifier of the request under review.
func (c ConfirmRequestCategoryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ReviewerID returns the staff member performing the review.
func (c ConfirmRequestCategoryCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c *ConfirmRequestCategoryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ConfirmRequestCategoryCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}
