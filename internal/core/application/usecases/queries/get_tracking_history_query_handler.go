package queries

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads a parcel's audit trail from the
// database. History rows are never mutated, so this read needs no locking.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for history queries.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle returns the parcel's history entries ordered oldest first. An
// unknown parcel yields an empty slice rather than an error; the caller
// decides whether that matters.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]TrackingHistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			occurred_at,
			description,
			override
		FROM tracking_history
		WHERE parcel_id = ?
		ORDER BY occurred_at
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackingHistoryEntryResponse
		var status int
		var occurredAt time.Time

		err = rows.Scan(
			&status,
			&entry.Location,
			&occurredAt,
			&entry.Description,
			&entry.Override,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = parcel.Status(status).String()
		entry.OccurredAt = occurredAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
