package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the append-only audit trail of a parcel
// by its internal identifier. Staff use this view to review every transition
// a parcel went through, including administrative overrides.
type GetTrackingHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a parcel's history.
func NewGetTrackingHistoryQuery(parcelID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the identifier of the parcel whose history is requested.
func (q GetTrackingHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}
