package commands

import (
	"context"
)

// SetRequestCategoryCommandHandler applies a staff category to a pending
// request, clearing the category confirmation flag.
type SetRequestCategoryCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSetRequestCategoryCommandHandler creates a handler for category entry.
func NewSetRequestCategoryCommandHandler(uowFactory RequestUoWFactory) SetRequestCategoryCommandHandler {
	return SetRequestCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request, records the category, and persists the change.
func (h *SetRequestCategoryCommandHandler) Handle(ctx context.Context, cmd SetRequestCategoryCommand) error {
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

	if err = aggregate.SetCategory(cmd.Category(), cmd.ReviewerID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
