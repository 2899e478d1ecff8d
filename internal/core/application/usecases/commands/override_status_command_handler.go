package commands

import (
	"context"
	"time"
)

// OverrideStatusCommandHandler applies administrative status corrections.
type OverrideStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewOverrideStatusCommandHandler creates a handler for status overrides.
func NewOverrideStatusCommandHandler(uowFactory ParcelUoWFactory) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command. The history entry is flagged as an
// override so corrections stay distinguishable from normal progression.
func (h *OverrideStatusCommandHandler) Handle(ctx context.Context, cmd OverrideStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.OverrideStatus(cmd.NewStatus(), cmd.Reason(), cmd.StaffID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, aggregate.TakeUncommittedHistory()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
