package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrMarkAvailableCommandIsNotConstructed = errors.New(
	"MarkAvailableCommand must be created via NewMarkAvailableCommand constructor",
)

// MarkAvailableCommand makes an arrived parcel available for pickup.
type MarkAvailableCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAvailableCommand creates a command to mark a parcel available.
func NewMarkAvailableCommand(parcelID kernel.UUID) (MarkAvailableCommand, error) {
	cmd := MarkAvailableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setParcelID(parcelID); err != nil {
		return MarkAvailableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAvailableCommand) Validate() error {
	return c.guard.Validate(ErrMarkAvailableCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to make available.
func (c MarkAvailableCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *MarkAvailableCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
