// Package historyrepo persists the append-only tracking history. There is
// deliberately no update or delete path; the history is the audit trail
// proving every transition a parcel went through.
package historyrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents the database structure for tracking history
// rows.
type HistoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	Location    string
	OccurredAt  time.Time `gorm:"index"`
	Description string
	Override    bool
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "tracking_history"
}

// fromDomain converts a history entry to its database representation.
func fromDomain(entry parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          entry.ID().Bytes(),
		ParcelID:    entry.ParcelID().Bytes(),
		Status:      int(entry.Status()),
		Location:    entry.Location().String(),
		OccurredAt:  entry.OccurredAt(),
		Description: entry.Description(),
		Override:    entry.IsOverride(),
	}
}

// toDomain converts a database DTO to a history entry.
func toDomain(dto HistoryEntryDTO) (parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	return parcel.RestoreHistoryEntry(
		id,
		parcelID,
		parcel.Status(dto.Status),
		location,
		dto.OccurredAt,
		dto.Description,
		dto.Override,
	)
}
