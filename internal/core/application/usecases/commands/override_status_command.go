package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand is the administrative correction path for a parcel
// whose recorded status is wrong. It bypasses the forward-only state machine
// and is logged distinctly in the tracking history.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status
	reason    string
	staffID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewOverrideStatusCommand creates a command to administratively override a
// parcel's status. A reason is mandatory.
func NewOverrideStatusCommand(
	parcelID kernel.UUID,
	newStatus parcel.Status,
	reason string,
	staffID kernel.UUID,
) (OverrideStatusCommand, error) {
	cmd := OverrideStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setNewStatus(newStatus),
		cmd.setReason(reason),
		cmd.setStaffID(staffID),
	); err != nil {
		return OverrideStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to correct.
func (c OverrideStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the status to force.
func (c OverrideStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

// Reason returns the mandatory correction reason.
func (c OverrideStatusCommand) Reason() string {
	return c.reason
}

// StaffID returns the staff member performing the correction.
func (c OverrideStatusCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *OverrideStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *OverrideStatusCommand) setNewStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.newStatus = status
	return nil
}

func (c *OverrideStatusCommand) setReason(reason string) error {
	if reason == "" {
		return parcel.ErrOverrideReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *OverrideStatusCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
