package commands

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateFeeScheduleCommandIsNotConstructed = errors.New(
		"CreateFeeScheduleCommand must be created via NewCreateFeeScheduleCommand constructor",
	)
	ErrEffectiveFromIsRequired = errors.New("effective date is required")
	ErrServiceFeeIsNegative    = errors.New("service fee cannot be negative")
	ErrPerPoundRateIsNegative  = errors.New("per-pound rate cannot be negative")
)

// CreateFeeScheduleCommand registers a new fee schedule version. Schedules
// with a past or current effective date replace the active one immediately;
// future-dated schedules wait for the activation job.
type CreateFeeScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID    kernel.UUID
	serviceFee    decimal.Decimal
	perPoundRate  decimal.Decimal
	effectiveFrom time.Time

	guard guard.ConstructorGuard
}

// NewCreateFeeScheduleCommand creates a command to register a fee schedule.
func NewCreateFeeScheduleCommand(
	scheduleID kernel.UUID,
	serviceFee decimal.Decimal,
	perPoundRate decimal.Decimal,
	effectiveFrom time.Time,
) (CreateFeeScheduleCommand, error) {
	cmd := CreateFeeScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setScheduleID(scheduleID),
		cmd.setServiceFee(serviceFee),
		cmd.setPerPoundRate(perPoundRate),
		cmd.setEffectiveFrom(effectiveFrom),
	); err != nil {
		return CreateFeeScheduleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFeeScheduleCommand) Validate() error {
	return c.guard.Validate(ErrCreateFeeScheduleCommandIsNotConstructed)
}

// ScheduleID returns the unique identifier for the new schedule.
func (c CreateFeeScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// ServiceFee returns the flat service fee.
func (c CreateFeeScheduleCommand) ServiceFee() decimal.Decimal {
	return c.serviceFee
}

// PerPoundRate returns the per-pound rate.
func (c CreateFeeScheduleCommand) PerPoundRate() decimal.Decimal {
	return c.perPoundRate
}

// EffectiveFrom returns the date the schedule takes effect.
func (c CreateFeeScheduleCommand) EffectiveFrom() time.Time {
	return c.effectiveFrom
}

func (c *CreateFeeScheduleCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *CreateFeeScheduleCommand) setServiceFee(serviceFee decimal.Decimal) error {
	if serviceFee.IsNegative() {
		return ErrServiceFeeIsNegative
	}

	c.serviceFee = serviceFee
	return nil
}

func (c *CreateFeeScheduleCommand) setPerPoundRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return ErrPerPoundRateIsNegative
	}

	c.perPoundRate = rate
	return nil
}

func (c *CreateFeeScheduleCommand) setEffectiveFrom(effectiveFrom time.Time) error {
	if effectiveFrom.IsZero() {
		return ErrEffectiveFromIsRequired
	}

	c.effectiveFrom = effectiveFrom
	return nil
}
