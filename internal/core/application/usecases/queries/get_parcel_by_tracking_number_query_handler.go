package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelByTrackingNumberQueryHandler serves the customer tracking lookup.
// Reads the parcel row and its history directly, bypassing the aggregate.
type GetParcelByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByTrackingNumberQueryHandler creates a handler for parcel
// lookups. Requires a GORM database connection for query execution.
func NewGetParcelByTrackingNumberQueryHandler(db *gorm.DB) GetParcelByTrackingNumberQueryHandler {
	return GetParcelByTrackingNumberQueryHandler{db: db}
}

// Handle resolves a tracking number to the parcel view including its full
// history, ordered oldest first. Returns ObjectNotFoundError when no parcel
// carries the tracking number.
func (h GetParcelByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingNumberQuery,
) (GetParcelByTrackingNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelByTrackingNumberQueryResponse{}, err
	}

	var response GetParcelByTrackingNumberQueryResponse
	var id uuid.UUID
	var status int
	var appliedRuleID sql.Null[uuid.UUID]
	var deliveredAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			location,
			weight,
			category,
			service_fee,
			variable_fee,
			total_fee,
			applied_rule_id,
			delivered_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Row()

	err := row.Scan(
		&id,
		&response.TrackingNumber,
		&status,
		&response.Location,
		&response.Weight,
		&response.Category,
		&response.ServiceFee,
		&response.VariableFee,
		&response.FeeTotal,
		&appliedRuleID,
		&deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelByTrackingNumberQueryResponse{},
			errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return GetParcelByTrackingNumberQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelByTrackingNumberQueryResponse{}, err
	}
	response.ID = parcelID
	response.Status = parcel.Status(status).String()
	response.SpecialItem = appliedRuleID.Valid
	if deliveredAt.Valid {
		t := deliveredAt.Time
		response.DeliveredAt = &t
	}

	history, err := h.loadHistory(ctx, id)
	if err != nil {
		return GetParcelByTrackingNumberQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetParcelByTrackingNumberQueryHandler) loadHistory(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]TrackingHistoryEntryResponse, error) {
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
	`, parcelID).Rows()
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
