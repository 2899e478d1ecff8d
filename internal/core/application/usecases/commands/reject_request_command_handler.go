package commands

import (
	"context"
)

// RejectRequestCommandHandler resolves pending requests as rejected.
type RejectRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewRejectRequestCommandHandler creates a handler for request rejection.
func NewRejectRequestCommandHandler(uowFactory RequestUoWFactory) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request and rejects it. Only pending requests can be
// rejected.
func (h *RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
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

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
