package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/request"
)

// SubmitRequestCommandHandler handles registration of new forwarding requests.
// New requests start in Pending status with an empty review.
type SubmitRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSubmitRequestCommandHandler creates a handler for request submission.
func NewSubmitRequestCommandHandler(uowFactory RequestUoWFactory) SubmitRequestCommandHandler {
	return SubmitRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command. Creates the request in Pending
// status and persists it transactionally.
func (h *SubmitRequestCommandHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := request.NewRequest(
		cmd.RequestID(),
		cmd.CustomerID(),
		cmd.CarrierReference(),
		cmd.Description(),
		cmd.EstimatedWeight(),
		cmd.DeclaredCategory(),
		cmd.Notes(),
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		time.Now().UTC(),
	)
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

	if err = uow.RequestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
