package pricingrepo

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFeeScheduleRepository implements FeeScheduleRepository using GORM.
type GormFeeScheduleRepository struct {
	db *gorm.DB
}

// NewGormFeeScheduleRepository creates a new GORM fee schedule repository.
func NewGormFeeScheduleRepository(db *gorm.DB) *GormFeeScheduleRepository {
	return &GormFeeScheduleRepository{db: db}
}

// Add saves a new fee schedule to the database.
func (r *GormFeeScheduleRepository) Add(ctx context.Context, schedule *pricing.FeeSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(schedule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing fee schedule to the database.
func (r *GormFeeScheduleRepository) Update(ctx context.Context, schedule *pricing.FeeSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(schedule)
	result := r.db.WithContext(ctx).Model(&FeeScheduleDTO{}).
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

// Get retrieves a fee schedule by ID.
func (r *GormFeeScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.FeeSchedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FeeScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fee schedule", id.String())
		}
		return nil, err
	}

	return scheduleToDomain(dto)
}

// GetActive retrieves the currently active fee schedule.
func (r *GormFeeScheduleRepository) GetActive(ctx context.Context) (*pricing.FeeSchedule, error) {
	var dto FeeScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "active = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fee schedule", "active")
		}
		return nil, err
	}

	return scheduleToDomain(dto)
}

// GetNewestDue retrieves the schedule with the latest effective date not
// after now.
func (r *GormFeeScheduleRepository) GetNewestDue(ctx context.Context, now time.Time) (*pricing.FeeSchedule, error) {
	var dto FeeScheduleDTO
	if err := r.db.WithContext(ctx).
		Where("effective_from <= ?", now).
		Order("effective_from DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fee schedule", "newest due")
		}
		return nil, err
	}

	return scheduleToDomain(dto)
}

// ExistsWithEffectiveDate reports whether a schedule exists with the given
// effective date.
func (r *GormFeeScheduleRepository) ExistsWithEffectiveDate(ctx context.Context, effectiveDate time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&FeeScheduleDTO{}).
		Where("effective_from = ?", effectiveDate).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeactivateAllExcept clears the active flag on every other schedule.
func (r *GormFeeScheduleRepository) DeactivateAllExcept(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&FeeScheduleDTO{}).
		Where("id != ? AND active = ?", id.Bytes(), true).
		Update("active", false).Error
}
