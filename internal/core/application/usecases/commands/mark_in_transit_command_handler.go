package commands

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
)

// MarkInTransitCommandHandler ships received parcels. The parcel update and
// its history entry are persisted in the same transaction.
type MarkInTransitCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
}

// NewMarkInTransitCommandHandler creates a handler for the transit transition.
func NewMarkInTransitCommandHandler(uowFactory ParcelUoWFactory, notifier ports.Notifier) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transit command.
func (h *MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewLocation(cmd.Location())
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkInTransit(cmd.CarrierNote(), location, time.Now().UTC()); err != nil {
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
		slog.Warn("transit notification failed",
			"tracking_number", aggregate.TrackingNumber().String(),
			"error", notifyErr)
	}

	return nil
}
