package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// GetByRequestID retrieves the parcel created from a given request.
	// At most one parcel exists per approved request.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*parcel.Parcel, error)
}

// HistoryRepository defines the persistence contract for tracking history.
// Entries are append-only: the audit trail is never updated or deleted.
type HistoryRepository interface {
	// Append persists new history entries produced by a parcel transition.
	// Must run in the same transaction as the parcel update that produced them.
	Append(ctx context.Context, entries []parcel.HistoryEntry) error

	// GetByParcelID retrieves all history entries for a parcel ordered by
	// occurrence time, oldest first.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) ([]parcel.HistoryEntry, error)
}
