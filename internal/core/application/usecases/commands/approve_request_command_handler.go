package commands

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
)

// ApproveRequestCommandHandler performs the request approval transaction.
// In a single unit of work it checks the validation gate, prices the
// package against the active fee schedule and special item rules, allocates
// a tracking number, creates the parcel with its first history entry, and
// resolves the request as approved. Any failure rolls back the whole
// operation; in particular no parcel is ever created without a tracking
// number.
type ApproveRequestCommandHandler struct {
	uowFactory ApprovalUoWFactory
	calculator services.FeeCalculator
	matcher    services.SpecialItemMatcher
	notifier   ports.Notifier
}

// NewApproveRequestCommandHandler creates a handler for request approval.
func NewApproveRequestCommandHandler(
	uowFactory ApprovalUoWFactory,
	calculator services.FeeCalculator,
	matcher services.SpecialItemMatcher,
	notifier ports.Notifier,
) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		matcher:    matcher,
		notifier:   notifier,
	}
}

// Handle processes the approval command. The notifier runs only after the
// transaction commits; a notification failure never fails the approval.
func (h *ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	receivingLocation, err := kernel.NewLocation(cmd.ReceivingLocation())
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

	requestRepo := uow.RequestRepository()
	aggregate, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	// Gate check: reason-coded error, no state change on failure.
	if err = aggregate.Approve(); err != nil {
		return err
	}

	weight, err := aggregate.ConfirmedWeight()
	if err != nil {
		return err
	}
	category := aggregate.ConfirmedCategory()

	schedule, err := uow.FeeScheduleRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	rules, err := uow.SpecialItemRuleRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	rule := h.matcher.Match(rules, category, cmd.Brand(), cmd.ItemName(), cmd.Model())
	fee, err := h.calculator.Calculate(weight, rule, schedule)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sequence, err := uow.TrackingSequence().Next(ctx, now.Year())
	if err != nil {
		return err
	}

	trackingNumber, err := parcel.NewTrackingNumber(now.Year(), sequence)
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		trackingNumber,
		aggregate.ID(),
		aggregate.CustomerID(),
		weight,
		category,
		fee,
		receivingLocation,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, newParcel.TakeUncommittedHistory()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notifyErr := h.notifier.NotifyStatusChanged(ctx, newParcel); notifyErr != nil {
		slog.Warn("approval notification failed",
			"tracking_number", newParcel.TrackingNumber().String(),
			"error", notifyErr)
	}

	return nil
}
