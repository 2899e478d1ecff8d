// Package pricingrepo persists the pricing configuration: fee schedule
// versions and special item rules.
package pricingrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeScheduleDTO represents the database structure for fee schedule rows.
// The unique index on EffectiveFrom backs the duplicate-date rejection.
type FeeScheduleDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceFee    decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerPoundRate  decimal.Decimal `gorm:"type:numeric(12,4)"`
	EffectiveFrom time.Time       `gorm:"uniqueIndex"`
	Active        bool            `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for fee schedules.
func (FeeScheduleDTO) TableName() string {
	return "fee_schedules"
}

// SpecialItemRuleDTO represents the database structure for special item rule
// rows.
type SpecialItemRuleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category  string    `gorm:"index:idx_rule_key"`
	Brand     string    `gorm:"index:idx_rule_key"`
	ItemName  string    `gorm:"index:idx_rule_key"`
	MinModel  string
	MaxModel  string
	FixedFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active    bool            `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for special item rules.
func (SpecialItemRuleDTO) TableName() string {
	return "special_item_rules"
}

func scheduleFromDomain(schedule *pricing.FeeSchedule) FeeScheduleDTO {
	return FeeScheduleDTO{
		ID:            schedule.ID().Bytes(),
		ServiceFee:    schedule.ServiceFee().Amount(),
		PerPoundRate:  schedule.PerPoundRate().Amount(),
		EffectiveFrom: schedule.EffectiveFrom(),
		Active:        schedule.IsActive(),
		CreatedAt:     schedule.CreatedAt(),
	}
}

func scheduleToDomain(dto FeeScheduleDTO) (*pricing.FeeSchedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceFee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return nil, err
	}

	perPoundRate, err := kernel.NewMoney(dto.PerPoundRate)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreFeeSchedule(id, serviceFee, perPoundRate, dto.EffectiveFrom, dto.Active, dto.CreatedAt)
}

func ruleFromDomain(rule *pricing.SpecialItemRule) SpecialItemRuleDTO {
	return SpecialItemRuleDTO{
		ID:        rule.ID().Bytes(),
		Category:  rule.Category(),
		Brand:     rule.Brand(),
		ItemName:  rule.ItemName(),
		MinModel:  rule.MinModel(),
		MaxModel:  rule.MaxModel(),
		FixedFee:  rule.FixedFee().Amount(),
		Active:    rule.IsActive(),
		CreatedAt: rule.CreatedAt(),
	}
}

func ruleToDomain(dto SpecialItemRuleDTO) (*pricing.SpecialItemRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fixedFee, err := kernel.NewMoney(dto.FixedFee)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreSpecialItemRule(
		id,
		dto.Category,
		dto.Brand,
		dto.ItemName,
		dto.MinModel,
		dto.MaxModel,
		fixedFee,
		dto.Active,
		dto.CreatedAt,
	)
}
