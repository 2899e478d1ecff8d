package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
)

// CorrectWeightCommandHandler fixes a parcel's weight and recomputes its fee
// in one transaction. A parcel priced by a special item rule keeps its fixed
// fee; a weight-priced parcel is re-priced against the active schedule.
type CorrectWeightCommandHandler struct {
	uowFactory CorrectionUoWFactory
	calculator services.FeeCalculator
}

// NewCorrectWeightCommandHandler creates a handler for weight corrections.
func NewCorrectWeightCommandHandler(
	uowFactory CorrectionUoWFactory,
	calculator services.FeeCalculator,
) CorrectWeightCommandHandler {
	return CorrectWeightCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the correction command.
func (h *CorrectWeightCommandHandler) Handle(ctx context.Context, cmd CorrectWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	weight, err := kernel.NewWeight(cmd.Weight())
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

	schedule, err := uow.FeeScheduleRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	fee := aggregate.Fee()
	if ruleID := fee.AppliedRuleID(); ruleID != nil {
		rule, ruleErr := uow.SpecialItemRuleRepository().Get(ctx, *ruleID)
		if ruleErr != nil {
			return ruleErr
		}

		if fee, err = h.calculator.Calculate(weight, rule, schedule); err != nil {
			return err
		}
	} else if fee, err = h.calculator.Calculate(weight, nil, schedule); err != nil {
		return err
	}

	if err = aggregate.CorrectWeight(weight, fee, cmd.StaffID(), time.Now().UTC()); err != nil {
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
