package queries

import (
	"errors"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetParcelByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetParcelByTrackingNumberQuery must be created via NewGetParcelByTrackingNumberQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// GetParcelByTrackingNumberQuery retrieves the full public view of a parcel:
// current status, location, fee breakdown, and the complete tracking history.
// This is the query behind the customer-facing tracking page.
//
// Example:
//
//	query, err := queries.NewGetParcelByTrackingNumberQuery("PFH-2026-000042")
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to look up parcel: %w", err)
//	}
//
//	fmt.Printf("%s is %s at %s\n", view.TrackingNumber, view.Status, view.Location)
type GetParcelByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetParcelByTrackingNumberQuery creates a query for a single parcel view.
// The tracking number must be non-empty; surrounding whitespace is trimmed.
func NewGetParcelByTrackingNumberQuery(trackingNumber string) (GetParcelByTrackingNumberQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return GetParcelByTrackingNumberQuery{}, ErrTrackingNumberIsRequired
	}

	return GetParcelByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// TrackingNumber returns the tracking number being looked up.
func (q GetParcelByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingNumberQueryIsNotConstructed)
}

// GetParcelByTrackingNumberQueryResponse is the full tracking-page view of a
// parcel. FeeTotal is the authoritative charged amount; ServiceFee and
// VariableFee are its stored components.
type GetParcelByTrackingNumberQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	Location       string
	Weight         decimal.Decimal
	Category       string
	ServiceFee     decimal.Decimal
	VariableFee    decimal.Decimal
	FeeTotal       decimal.Decimal
	SpecialItem    bool
	DeliveredAt    *time.Time
	History        []TrackingHistoryEntryResponse
}

// TrackingHistoryEntryResponse is one row of a parcel's audit trail.
type TrackingHistoryEntryResponse struct {
	Status      string
	Location    string
	OccurredAt  time.Time
	Description string
	Override    bool
}
