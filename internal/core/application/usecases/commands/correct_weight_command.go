package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCorrectWeightCommandIsNotConstructed = errors.New(
		"CorrectWeightCommand must be created via NewCorrectWeightCommand constructor",
	)
	ErrCorrectedWeightIsInvalid = errors.New("corrected weight must be greater than 0")
)

// CorrectWeightCommand fixes a parcel's recorded weight after the fact.
// This is the only operation that recomputes fees; reads never do.
type CorrectWeightCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	weight   decimal.Decimal
	staffID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCorrectWeightCommand creates a command to correct a parcel's weight.
func NewCorrectWeightCommand(
	parcelID kernel.UUID,
	weight decimal.Decimal,
	staffID kernel.UUID,
) (CorrectWeightCommand, error) {
	cmd := CorrectWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setWeight(weight),
		cmd.setStaffID(staffID),
	); err != nil {
		return CorrectWeightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CorrectWeightCommand) Validate() error {
	return c.guard.Validate(ErrCorrectWeightCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to correct.
func (c CorrectWeightCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Weight returns the corrected weight in pounds.
func (c CorrectWeightCommand) Weight() decimal.Decimal {
	return c.weight
}

// StaffID returns the staff member performing the correction.
func (c CorrectWeightCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *CorrectWeightCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CorrectWeightCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrCorrectedWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CorrectWeightCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
