package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrSetRequestCategoryCommandIsNotConstructed = errors.New(
		"SetRequestCategoryCommand must be created via NewSetRequestCategoryCommand constructor",
	)
	ErrReviewCategoryIsRequired = errors.New("review category is required")
)

// SetRequestCategoryCommand records the staff-resolved category on a pending
// request. Setting a new value clears the category confirmation flag.
type SetRequestCategoryCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	category   string
	reviewerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetRequestCategoryCommand creates a command to set the staff category value.
func NewSetRequestCategoryCommand(
	requestID kernel.UUID,
	category string,
	reviewerID kernel.UUID,
) (SetRequestCategoryCommand, error) {
	cmd := SetRequestCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCategory(category),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return SetRequestCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRequestCategoryCommand) Validate() error {
	return c.guard.Validate(ErrSetRequestCategoryCommandIsNotConstructed)
}

// RequestID returns the identifier of the request under review.
func (c SetRequestCategoryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Category returns the staff-resolved category.
func (c SetRequestCategoryCommand) Category() string {
	return c.category
}

// ReviewerID returns the staff member performing the review.
func (c SetRequestCategoryCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c *SetRequestCategoryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SetRequestCategoryCommand) setCategory(category string) error {
	if category == "" {
		return ErrReviewCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *SetRequestCategoryCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}
