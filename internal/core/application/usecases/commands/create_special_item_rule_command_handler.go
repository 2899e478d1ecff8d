package commands

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
)

// ErrRuleRangeOverlaps is returned when a new rule's model range overlaps an
// existing active rule for the same (category, brand, item name) key.
// Overlaps are rejected at write time; the matcher's tie-break exists only
// for ambiguity already present in the data.
var ErrRuleRangeOverlaps = errors.New("model range overlaps an existing active rule for this item")

// CreateSpecialItemRuleCommandHandler registers special item pricing rules.
type CreateSpecialItemRuleCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreateSpecialItemRuleCommandHandler creates a handler for rule creation.
func NewCreateSpecialItemRuleCommandHandler(uowFactory PricingUoWFactory) CreateSpecialItemRuleCommandHandler {
	return CreateSpecialItemRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule creation command.
func (h *CreateSpecialItemRuleCommandHandler) Handle(ctx context.Context, cmd CreateSpecialItemRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fixedFee, err := kernel.NewMoney(cmd.FixedFee())
	if err != nil {
		return err
	}

	rule, err := pricing.NewSpecialItemRule(
		cmd.RuleID(),
		cmd.Category(),
		cmd.Brand(),
		cmd.ItemName(),
		cmd.MinModel(),
		cmd.MaxModel(),
		fixedFee,
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

	ruleRepo := uow.SpecialItemRuleRepository()

	active, err := ruleRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, existing := range active {
		if rule.OverlapsWith(existing) {
			return ErrRuleRangeOverlaps
		}
	}

	if err = ruleRepo.Add(ctx, rule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
