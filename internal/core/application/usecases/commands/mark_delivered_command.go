package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
	ErrReceivedByIsRequired        = errors.New("receiving person is required")
	ErrEvidenceReferenceIsRequired = errors.New("proof of delivery evidence reference is required")
)

// MarkDeliveredCommand completes a parcel's lifecycle. Proof of delivery
// (who received it and a signature or photo reference) is mandatory.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	parcelID          kernel.UUID
	receivedBy        string
	evidenceReference string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a parcel delivered.
func NewMarkDeliveredCommand(
	parcelID kernel.UUID,
	receivedBy string,
	evidenceReference string,
) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setReceivedBy(receivedBy),
		cmd.setEvidenceReference(evidenceReference),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to deliver.
func (c MarkDeliveredCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ReceivedBy returns the name of the person who received the package.
func (c MarkDeliveredCommand) ReceivedBy() string {
	return c.receivedBy
}

// EvidenceReference returns the signature or photo reference.
func (c MarkDeliveredCommand) EvidenceReference() string {
	return c.evidenceReference
}

func (c *MarkDeliveredCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *MarkDeliveredCommand) setReceivedBy(receivedBy string) error {
	if receivedBy == "" {
		return ErrReceivedByIsRequired
	}

	c.receivedBy = receivedBy
	return nil
}

func (c *MarkDeliveredCommand) setEvidenceReference(ref string) error {
	if ref == "" {
		return ErrEvidenceReferenceIsRequired
	}

	c.evidenceReference = ref
	return nil
}
