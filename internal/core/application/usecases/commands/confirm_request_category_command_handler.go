package commands

import (
	"context"
)

// ConfirmRequestCategoryCommandHandler confirms the staff-entered category
// on a pending request.
type ConfirmRequestCategoryCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewConfirmRequestCategoryCommandHandler creates a handler for category confirmation.
func NewConfirmRequestCategoryCommandHandler(uowFactory RequestUoWFactory) ConfirmRequestCategoryCommandHandler {
	return ConfirmRequestCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request and confirms its category. The domain rejects
// confirmation when no category has been set.
func (h *ConfirmRequestCategoryCommandHandler) Handle(ctx context.Context, cmd ConfirmRequestCategoryCommand) error {
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

	if err = aggregate.ConfirmCategory(cmd.ReviewerID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
