package pricingrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSpecialItemRuleRepository implements SpecialItemRuleRepository using GORM.
type GormSpecialItemRuleRepository struct {
	db *gorm.DB
}

// NewGormSpecialItemRuleRepository creates a new GORM special item rule repository.
func NewGormSpecialItemRuleRepository(db *gorm.DB) *GormSpecialItemRuleRepository {
	return &GormSpecialItemRuleRepository{db: db}
}

// Add saves a new special item rule to the database.
func (r *GormSpecialItemRuleRepository) Add(ctx context.Context, rule *pricing.SpecialItemRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing special item rule to the database.
func (r *GormSpecialItemRuleRepository) Update(ctx context.Context, rule *pricing.SpecialItemRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	result := r.db.WithContext(ctx).Model(&SpecialItemRuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a special item rule by ID.
func (r *GormSpecialItemRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.SpecialItemRule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SpecialItemRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("special item rule", id.String())
		}
		return nil, err
	}

	return ruleToDomain(dto)
}

// GetAllActive retrieves every active rule. Matching happens in the domain
// service so string comparison semantics stay in one place.
func (r *GormSpecialItemRuleRepository) GetAllActive(ctx context.Context) ([]*pricing.SpecialItemRule, error) {
	var dtos []SpecialItemRuleDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	rules := make([]*pricing.SpecialItemRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
