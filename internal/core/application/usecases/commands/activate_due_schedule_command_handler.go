package commands

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/pkg/errs"
)

// ErrNoScheduleDue is returned when no fee schedule has reached its
// effective date yet. Expected during bootstrap before the first schedule
// is registered.
var ErrNoScheduleDue = errors.New("no fee schedule is due for activation")

// ActivateDueScheduleCommandHandler promotes the newest due fee schedule to
// active. Activation and the deactivation of every other schedule happen in
// one transaction so at most one schedule is ever active.
type ActivateDueScheduleCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewActivateDueScheduleCommandHandler creates a handler for schedule
// activation.
func NewActivateDueScheduleCommandHandler(uowFactory PricingUoWFactory) ActivateDueScheduleCommandHandler {
	return ActivateDueScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command. Returns ErrNoScheduleDue when no
// schedule has a past effective date, and does nothing when the newest due
// schedule is already the active one.
func (h *ActivateDueScheduleCommandHandler) Handle(ctx context.Context, cmd ActivateDueScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.FeeScheduleRepository()

	now := time.Now().UTC()
	schedule, err := scheduleRepo.GetNewestDue(ctx, now)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoScheduleDue
		}
		return err
	}

	if schedule.IsActive() {
		return uow.Commit(ctx)
	}

	if err = schedule.Activate(now); err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, schedule); err != nil {
		return err
	}

	if err = scheduleRepo.DeactivateAllExcept(ctx, schedule.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
