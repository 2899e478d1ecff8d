package queries

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingRequestsQueryHandler serves the staff review work queue from the
// database, oldest submissions first.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsQueryHandler creates a handler for work queue queries.
func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

// Handle returns all pending requests with their review gate state.
func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]GetPendingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			carrier_reference,
			description,
			estimated_weight,
			declared_category,
			review_weight,
			review_weight_confirmed,
			review_category,
			review_category_confirmed,
			created_at
		FROM requests
		WHERE status = ?
		ORDER BY created_at
	`, request.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingRequestsQueryResponse
		var id, customerID uuid.UUID
		var estimatedWeight decimal.NullDecimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&resp.CarrierReference,
			&resp.Description,
			&estimatedWeight,
			&resp.DeclaredCategory,
			&resp.ReviewWeight,
			&resp.WeightConfirmed,
			&resp.ReviewCategory,
			&resp.CategoryConfirmed,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requestID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		if estimatedWeight.Valid {
			w := estimatedWeight.Decimal
			resp.EstimatedWeight = &w
		}
		resp.CreatedAt = createdAt

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
