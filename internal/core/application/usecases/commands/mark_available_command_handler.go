package commands

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/ports"
)

// MarkAvailableCommandHandler makes arrived parcels available for pickup and
// notifies the customer.
type MarkAvailableCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
}

// NewMarkAvailableCommandHandler creates a handler for the available transition.
func NewMarkAvailableCommandHandler(uowFactory ParcelUoWFactory, notifier ports.Notifier) MarkAvailableCommandHandler {
	return MarkAvailableCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the available command. The domain rejects the transition
// until arrival has been recorded.
func (h *MarkAvailableCommandHandler) Handle(ctx context.Context, cmd MarkAvailableCommand) error {
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

	if err = aggregate.MarkAvailable(time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, aggregate.TakeUncommittedHistory()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notifyErr := h.notifier.NotifyStatusChanged(ctx, aggregate); notifyErr != nil {
		slog.Warn("availability notification failed",
			"tracking_number", aggregate.TrackingNumber().String(),
			"error", notifyErr)
	}

	return nil
}
