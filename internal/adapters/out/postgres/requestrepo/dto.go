// Package requestrepo provides data transfer objects and mapping functions
// for request persistence. Implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestDTO represents the database structure for persisting request
// aggregates. The review gate state is embedded in the same row; it lives
// and dies with the request.
type RequestDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	CarrierReference string
	Description      string
	EstimatedWeight  decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	DeclaredCategory string
	Notes            string
	RecipientName    string
	RecipientPhone   string
	Status           int       `gorm:"index"`
	Review           ReviewDTO `gorm:"embedded;embeddedPrefix:review_"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// ReviewDTO represents the embedded staff review state within the request row.
type ReviewDTO struct {
	Weight            decimal.Decimal `gorm:"type:numeric(8,2)"`
	WeightConfirmed   bool
	Category          string
	CategoryConfirmed bool
	ReviewedBy        *uuid.UUID `gorm:"type:uuid"`
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	estimated := decimal.NullDecimal{}
	if w := aggregate.EstimatedWeight(); w != nil {
		estimated = decimal.NewNullDecimal(*w)
	}

	review := aggregate.Review()
	var reviewedBy *uuid.UUID
	if id := review.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return RequestDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		CarrierReference: aggregate.CarrierReference(),
		Description:      aggregate.Description(),
		EstimatedWeight:  estimated,
		DeclaredCategory: aggregate.DeclaredCategory(),
		Notes:            aggregate.Notes(),
		RecipientName:    aggregate.RecipientName(),
		RecipientPhone:   aggregate.RecipientPhone(),
		Status:           int(aggregate.Status()),
		Review: ReviewDTO{
			Weight:            review.Weight(),
			WeightConfirmed:   review.IsWeightConfirmed(),
			Category:          review.Category(),
			CategoryConfirmed: review.IsCategoryConfirmed(),
			ReviewedBy:        reviewedBy,
		},
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a request aggregate using RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var estimated *decimal.Decimal
	if dto.EstimatedWeight.Valid {
		value := dto.EstimatedWeight.Decimal
		estimated = &value
	}

	var reviewedBy *kernel.UUID
	if dto.Review.ReviewedBy != nil {
		rID, reviewErr := kernel.UUIDFromBytes((*dto.Review.ReviewedBy)[:])
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviewedBy = &rID
	}

	review := request.RestoreReview(
		dto.Review.Weight,
		dto.Review.WeightConfirmed,
		dto.Review.Category,
		dto.Review.CategoryConfirmed,
		reviewedBy,
	)

	return request.RestoreRequest(
		id,
		customerID,
		dto.CarrierReference,
		dto.Description,
		estimated,
		dto.DeclaredCategory,
		dto.Notes,
		dto.RecipientName,
		dto.RecipientPhone,
		request.Status(dto.Status),
		review,
		dto.CreatedAt,
	)
}
