package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrRecordArrivalCommandIsNotConstructed = errors.New(
		"RecordArrivalCommand must be created via NewRecordArrivalCommand constructor",
	)
	ErrArrivalLocationIsRequired = errors.New("arrival location is required")
)

// RecordArrivalCommand records that an in-transit parcel reached the
// destination warehouse. The parcel stays in transit but becomes eligible
// for the available transition.
type RecordArrivalCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewRecordArrivalCommand creates a command to record arrival at the
// destination warehouse.
func NewRecordArrivalCommand(parcelID kernel.UUID, location string) (RecordArrivalCommand, error) {
	cmd := RecordArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setLocation(location),
	); err != nil {
		return RecordArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordArrivalCommand) Validate() error {
	return c.guard.Validate(ErrRecordArrivalCommandIsNotConstructed)
}

// ParcelID returns the identifier of the arriving parcel.
func (c RecordArrivalCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Location returns the destination warehouse label.
func (c RecordArrivalCommand) Location() string {
	return c.location
}

func (c *RecordArrivalCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordArrivalCommand) setLocation(location string) error {
	if location == "" {
		return ErrArrivalLocationIsRequired
	}

	c.location = location
	return nil
}
