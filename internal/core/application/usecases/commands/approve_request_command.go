package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrApproveRequestCommandIsNotConstructed = errors.New(
		"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
	)
	ErrReceivingLocationIsRequired = errors.New("receiving location is required")
)

// ApproveRequestCommand converts a reviewed request into a billable, tracked
// parcel. The brand, item name, and model are staff-entered item descriptors
// used for special item matching; when omitted no rule can match and the
// parcel is priced by weight.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.UUID
	reviewerID        kernel.UUID
	receivingLocation string
	brand             string
	itemName          string
	model             string

	guard guard.ConstructorGuard
}

// NewApproveRequestCommand creates a command to approve a reviewed request.
// The receiving location names the warehouse where the package was checked in.
func NewApproveRequestCommand(
	requestID kernel.UUID,
	reviewerID kernel.UUID,
	receivingLocation string,
	brand string,
	itemName string,
	model string,
) (ApproveRequestCommand, error) {
	cmd := ApproveRequestCommand{
		brand:    brand,
		itemName: itemName,
		model:    model,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReviewerID(reviewerID),
		cmd.setReceivingLocation(receivingLocation),
	); err != nil {
		return ApproveRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to approve.
func (c ApproveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ReviewerID returns the staff member approving the request.
func (c ApproveRequestCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// ReceivingLocation returns the warehouse where the package was received.
func (c ApproveRequestCommand) ReceivingLocation() string {
	return c.receivingLocation
}

// Brand returns the staff-entered item brand, if any.
func (c ApproveRequestCommand) Brand() string {
	return c.brand
}

// ItemName returns the staff-entered item name, if any.
func (c ApproveRequestCommand) ItemName() string {
	return c.itemName
}

// Model returns the staff-entered item model, if any.
func (c ApproveRequestCommand) Model() string {
	return c.model
}

func (c *ApproveRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ApproveRequestCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}

func (c *ApproveRequestCommand) setReceivingLocation(location string) error {
	if location == "" {
		return ErrReceivingLocationIsRequired
	}

	c.receivingLocation = location
	return nil
}
