package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrMarkInTransitCommandIsNotConstructed = errors.New(
		"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
	)
	ErrTransitLocationIsRequired = errors.New("transit location is required")
)

// MarkInTransitCommand ships a received parcel. The carrier note is an
// optional free-text reference (flight or container number).
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	location    string
	carrierNote string

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to mark a parcel in transit.
func NewMarkInTransitCommand(
	parcelID kernel.UUID,
	location string,
	carrierNote string,
) (MarkInTransitCommand, error) {
	cmd := MarkInTransitCommand{
		carrierNote: carrierNote,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setLocation(location),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to ship.
func (c MarkInTransitCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Location returns the transit location label.
func (c MarkInTransitCommand) Location() string {
	return c.location
}

// CarrierNote returns the optional carrier reference.
func (c MarkInTransitCommand) CarrierNote() string {
	return c.carrierNote
}

func (c *MarkInTransitCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *MarkInTransitCommand) setLocation(location string) error {
	if location == "" {
		return ErrTransitLocationIsRequired
	}

	c.location = location
	return nil
}
