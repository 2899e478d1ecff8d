package commands

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
)

// MarkDeliveredCommandHandler completes parcel lifecycles with proof of
// delivery.
type MarkDeliveredCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for the delivered transition.
func NewMarkDeliveredCommandHandler(uowFactory ParcelUoWFactory, notifier ports.Notifier) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	proof, err := parcel.NewProofOfDelivery(cmd.ReceivedBy(), cmd.EvidenceReference())
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

	if err = aggregate.MarkDelivered(proof, time.Now().UTC()); err != nil {
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
		slog.Warn("delivery notification failed",
			"tracking_number", aggregate.TrackingNumber().String(),
			"error", notifyErr)
	}

	return nil
}
