package commands

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
)

// ErrEffectiveDateIsTaken is returned when a schedule already exists with
// the requested effective date. Conflicting pricing configuration is
// rejected at write time, never silently resolved.
var ErrEffectiveDateIsTaken = errors.New("a fee schedule with this effective date already exists")

// CreateFeeScheduleCommandHandler registers fee schedule versions. When the
// effective date has already arrived, deactivating the previous schedule and
// activating the new one happen in the same transaction so at most one
// schedule is ever active.
type CreateFeeScheduleCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreateFeeScheduleCommandHandler creates a handler for schedule creation.
func NewCreateFeeScheduleCommandHandler(uowFactory PricingUoWFactory) CreateFeeScheduleCommandHandler {
	return CreateFeeScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the schedule creation command.
func (h *CreateFeeScheduleCommandHandler) Handle(ctx context.Context, cmd CreateFeeScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	serviceFee, err := kernel.NewMoney(cmd.ServiceFee())
	if err != nil {
		return err
	}

	perPoundRate, err := kernel.NewMoney(cmd.PerPoundRate())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	schedule, err := pricing.NewFeeSchedule(cmd.ScheduleID(), serviceFee, perPoundRate, cmd.EffectiveFrom(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.FeeScheduleRepository()

	taken, err := scheduleRepo.ExistsWithEffectiveDate(ctx, cmd.EffectiveFrom())
	if err != nil {
		return err
	}
	if taken {
		return ErrEffectiveDateIsTaken
	}

	if schedule.IsDue(now) {
		if err = schedule.Activate(now); err != nil {
			return err
		}
	}

	if err = scheduleRepo.Add(ctx, schedule); err != nil {
		return err
	}

	if schedule.IsActive() {
		if err = scheduleRepo.DeactivateAllExcept(ctx, schedule.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
