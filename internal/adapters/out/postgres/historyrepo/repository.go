package historyrepo

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists new history entries. Runs in the caller's transaction so
// entries commit together with the parcel transition that produced them.
func (r *GormHistoryRepository) Append(ctx context.Context, entries []parcel.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetByParcelID retrieves a parcel's history ordered oldest first.
func (r *GormHistoryRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) ([]parcel.HistoryEntry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	if err := r.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		return nil, err
	}

	entries := make([]parcel.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
