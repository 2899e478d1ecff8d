package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuoteFeeQueryHandler prices a hypothetical package against the current
// active fee schedule and special-item rules. Pure read: nothing is written
// and no sequence is consumed.
type QuoteFeeQueryHandler struct {
	db         *gorm.DB
	calculator services.FeeCalculator
	matcher    services.SpecialItemMatcher
}

// NewQuoteFeeQueryHandler creates a handler for fee previews.
func NewQuoteFeeQueryHandler(
	db *gorm.DB,
	calculator services.FeeCalculator,
	matcher services.SpecialItemMatcher,
) QuoteFeeQueryHandler {
	return QuoteFeeQueryHandler{db: db, calculator: calculator, matcher: matcher}
}

// Handle computes the preview. Returns ObjectNotFoundError when no fee
// schedule is active, and the pricing error when a weight-priced quote
// lacks a positive weight.
func (h QuoteFeeQueryHandler) Handle(
	ctx context.Context,
	query QuoteFeeQuery,
) (QuoteFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteFeeQueryResponse{}, err
	}

	schedule, err := h.loadActiveSchedule(ctx)
	if err != nil {
		return QuoteFeeQueryResponse{}, err
	}

	rules, err := h.loadActiveRules(ctx)
	if err != nil {
		return QuoteFeeQueryResponse{}, err
	}

	rule := h.matcher.Match(rules, query.Category(), query.Brand(), query.ItemName(), query.Model())

	var weight kernel.Weight
	if w := query.Weight(); w != nil {
		weight, err = kernel.NewWeight(*w)
		if err != nil && rule == nil {
			return QuoteFeeQueryResponse{}, err
		}
	}

	fee, err := h.calculator.Calculate(weight, rule, schedule)
	if err != nil {
		return QuoteFeeQueryResponse{}, err
	}

	return QuoteFeeQueryResponse{
		ServiceFee:    fee.ServiceFee().Amount(),
		VariableFee:   fee.VariableFee().Amount(),
		Total:         fee.Total().Amount(),
		SpecialItem:   fee.AppliedRuleID() != nil,
		AppliedRuleID: fee.AppliedRuleID(),
	}, nil
}

func (h QuoteFeeQueryHandler) loadActiveSchedule(ctx context.Context) (*pricing.FeeSchedule, error) {
	var id uuid.UUID
	var serviceFee, perPoundRate decimal.Decimal
	var effectiveFrom, createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_fee,
			per_pound_rate,
			effective_from,
			created_at
		FROM fee_schedules
		WHERE active = true
	`).Row()

	err := row.Scan(&id, &serviceFee, &perPoundRate, &effectiveFrom, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("activeFeeSchedule", nil)
	}
	if err != nil {
		return nil, err
	}

	scheduleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	service, err := kernel.NewMoney(serviceFee)
	if err != nil {
		return nil, err
	}

	perPound, err := kernel.NewMoney(perPoundRate)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreFeeSchedule(scheduleID, service, perPound, effectiveFrom, true, createdAt)
}

func (h QuoteFeeQueryHandler) loadActiveRules(ctx context.Context) ([]*pricing.SpecialItemRule, error) {
	rules := make([]*pricing.SpecialItemRule, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			brand,
			item_name,
			min_model,
			max_model,
			fixed_fee,
			created_at
		FROM special_item_rules
		WHERE active = true
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var category, brand, itemName, minModel, maxModel string
		var fixedFee decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(&id, &category, &brand, &itemName, &minModel, &maxModel, &fixedFee, &createdAt)
		if err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		fee, feeErr := kernel.NewMoney(fixedFee)
		if feeErr != nil {
			return nil, feeErr
		}

		rule, ruleErr := pricing.RestoreSpecialItemRule(
			ruleID, category, brand, itemName, minModel, maxModel, fee, true, createdAt,
		)
		if ruleErr != nil {
			return nil, ruleErr
		}

		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
