package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSubmitRequestCommandIsNotConstructed = errors.New(
		"SubmitRequestCommand must be created via NewSubmitRequestCommand constructor",
	)
	ErrCarrierReferenceIsRequired = errors.New("carrier reference is required")
	ErrDescriptionIsRequired      = errors.New("description is required")
	ErrRecipientNameIsRequired    = errors.New("recipient name is required")
	ErrEstimatedWeightIsInvalid   = errors.New("estimated weight must be greater than 0 when provided")
)

// SubmitRequestCommand represents a customer's submission of a new package
// forwarding request. The estimated weight and declared category are
// advisory; staff confirm authoritative values during review.
type SubmitRequestCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	customerID       kernel.UUID
	carrierReference string
	description      string
	estimatedWeight  *decimal.Decimal
	declaredCategory string
	notes            string
	recipientName    string
	recipientPhone   string

	guard guard.ConstructorGuard
}

// NewSubmitRequestCommand creates a command to register a new forwarding request.
// Carrier reference, description, and recipient name are required; the
// estimated weight, when provided, must be positive.
func NewSubmitRequestCommand(
	requestID kernel.UUID,
	customerID kernel.UUID,
	carrierReference string,
	description string,
	estimatedWeight *decimal.Decimal,
	declaredCategory string,
	notes string,
	recipientName string,
	recipientPhone string,
) (SubmitRequestCommand, error) {
	cmd := SubmitRequestCommand{
		declaredCategory: declaredCategory,
		notes:            notes,
		recipientPhone:   recipientPhone,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCustomerID(customerID),
		cmd.setCarrierReference(carrierReference),
		cmd.setDescription(description),
		cmd.setEstimatedWeight(estimatedWeight),
		cmd.setRecipientName(recipientName),
	); err != nil {
		return SubmitRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new request.
func (c SubmitRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CarrierReference returns the external carrier tracking reference.
func (c SubmitRequestCommand) CarrierReference() string {
	return c.carrierReference
}

// Description returns the free-text description of the package contents.
func (c SubmitRequestCommand) Description() string {
	return c.description
}

// EstimatedWeight returns the customer's advisory weight estimate, if any.
func (c SubmitRequestCommand) EstimatedWeight() *decimal.Decimal {
	return c.estimatedWeight
}

// DeclaredCategory returns the customer's declared category, if any.
func (c SubmitRequestCommand) DeclaredCategory() string {
	return c.declaredCategory
}

// Notes returns the customer's free-form notes.
func (c SubmitRequestCommand) Notes() string {
	return c.notes
}

// RecipientName returns the Haiti-side recipient's name.
func (c SubmitRequestCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (c SubmitRequestCommand) RecipientPhone() string {
	return c.recipientPhone
}

func (c *SubmitRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitRequestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitRequestCommand) setCarrierReference(ref string) error {
	if ref == "" {
		return ErrCarrierReferenceIsRequired
	}

	c.carrierReference = ref
	return nil
}

func (c *SubmitRequestCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *SubmitRequestCommand) setEstimatedWeight(weight *decimal.Decimal) error {
	if weight != nil && !weight.IsPositive() {
		return ErrEstimatedWeightIsInvalid
	}

	c.estimatedWeight = weight
	return nil
}

func (c *SubmitRequestCommand) setRecipientName(name string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = name
	return nil
}
