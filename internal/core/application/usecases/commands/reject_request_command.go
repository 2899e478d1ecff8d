package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand resolves a pending request as rejected. Rejection is
// terminal; the request becomes immutable.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	reviewerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command to reject a pending request.
func NewRejectRequestCommand(
	requestID kernel.UUID,
	reviewerID kernel.UUID,
) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to reject.
func (c RejectRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ReviewerID returns the staff member rejecting the request.
func (c RejectRequestCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c *RejectRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RejectRequestCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}
