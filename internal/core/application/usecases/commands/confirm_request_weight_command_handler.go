package commands

import (
	"context"
)

// ConfirmRequestWeightCommandHandler confirms the staff-entered weight on a
// pending request.
type ConfirmRequestWeightCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewConfirmRequestWeightCommandHandler creates a handler for weight confirmation.
func NewConfirmRequestWeightCommandHandler(uowFactory RequestUoWFactory) ConfirmRequestWeightCommandHandler {
	return ConfirmRequestWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request and confirms its weight. The domain rejects
// confirmation of a zero or missing weight.
func (h *ConfirmRequestWeightCommandHandler) Handle(ctx context.Context, cmd ConfirmRequestWeightCommand) error {
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

	if err = aggregate.ConfirmWeight(cmd.ReviewerID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
