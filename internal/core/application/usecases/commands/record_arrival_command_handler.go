package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// RecordArrivalCommandHandler records arrival of an in-transit parcel at the
// destination warehouse.
type RecordArrivalCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRecordArrivalCommandHandler creates a handler for arrival recording.
func NewRecordArrivalCommandHandler(uowFactory ParcelUoWFactory) RecordArrivalCommandHandler {
	return RecordArrivalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival command. The location change is appended to
// the tracking history; the status does not change.
func (h *RecordArrivalCommandHandler) Handle(ctx context.Context, cmd RecordArrivalCommand) error {
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

	if err = aggregate.RecordArrival(location, time.Now().UTC()); err != nil {
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
