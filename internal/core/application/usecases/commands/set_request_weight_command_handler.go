package commands

import (
	"context"
)

// SetRequestWeightCommandHandler applies a staff weight measurement to a
// pending request, clearing the weight confirmation flag.
type SetRequestWeightCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSetRequestWeightCommandHandler creates a handler for weight entry.
func NewSetRequestWeightCommandHandler(uowFactory RequestUoWFactory) SetRequestWeightCommandHandler {
	return SetRequestWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request, records the weight, and persists the change.
// Resolved requests reject the edit.
func (h *SetRequestWeightCommandHandler) Handle(ctx context.Context, cmd SetRequestWeightCommand) error {
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

	requestRepo := uow.RequestRepository()
	aggregate, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = aggregate.SetWeight(cmd.Weight(), cmd.ReviewerID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
