package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitRequestBody is the customer-facing submission payload.
type SubmitRequestBody struct {
	CustomerID       uuid.UUID        `json:"customerId" validate:"required"`
	CarrierReference string           `json:"carrierReference" validate:"required"`
	Description      string           `json:"description" validate:"required"`
	EstimatedWeight  *decimal.Decimal `json:"estimatedWeight,omitempty"`
	DeclaredCategory string           `json:"declaredCategory,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	RecipientName    string           `json:"recipientName" validate:"required"`
	RecipientPhone   string           `json:"recipientPhone,omitempty"`
}

// SubmitRequestResponse returns the identifier of the created request.
type SubmitRequestResponse struct {
	RequestID uuid.UUID `json:"requestId"`
}

// SetWeightBody records a staff weight measurement on a pending request.
type SetWeightBody struct {
	Weight     decimal.Decimal `json:"weight" validate:"required"`
	ReviewerID uuid.UUID       `json:"reviewerId" validate:"required"`
}

// SetCategoryBody records a staff category assignment on a pending request.
type SetCategoryBody struct {
	Category   string    `json:"category" validate:"required"`
	ReviewerID uuid.UUID `json:"reviewerId" validate:"required"`
}

// ReviewerBody carries just the acting reviewer, used by the confirm and
// reject endpoints.
type ReviewerBody struct {
	ReviewerID uuid.UUID `json:"reviewerId" validate:"required"`
}

// ApproveRequestBody converts a reviewed request into a parcel. The item
// descriptors are optional staff entries used for special item matching.
type ApproveRequestBody struct {
	ReviewerID        uuid.UUID `json:"reviewerId" validate:"required"`
	ReceivingLocation string    `json:"receivingLocation" validate:"required"`
	Brand             string    `json:"brand,omitempty"`
	ItemName          string    `json:"itemName,omitempty"`
	Model             string    `json:"model,omitempty"`
}

// MarkInTransitBody records a departure toward the destination country.
type MarkInTransitBody struct {
	Location    string `json:"location" validate:"required"`
	CarrierNote string `json:"carrierNote,omitempty"`
}

// RecordArrivalBody records a checkpoint arrival while in transit.
type RecordArrivalBody struct {
	Location string `json:"location" validate:"required"`
}

// MarkDeliveredBody closes out a parcel with proof of delivery.
type MarkDeliveredBody struct {
	ReceivedBy        string `json:"receivedBy" validate:"required"`
	EvidenceReference string `json:"evidenceReference" validate:"required"`
}

// OverrideStatusBody forces a parcel into a status outside the normal
// forward progression. Reason is mandatory; the override is flagged in the
// tracking history.
type OverrideStatusBody struct {
	NewStatus string    `json:"newStatus" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
	StaffID   uuid.UUID `json:"staffId" validate:"required"`
}

// CorrectWeightBody re-measures a parcel and reprices it.
type CorrectWeightBody struct {
	Weight  decimal.Decimal `json:"weight" validate:"required"`
	StaffID uuid.UUID       `json:"staffId" validate:"required"`
}

// CreateFeeScheduleBody registers a fee schedule version.
type CreateFeeScheduleBody struct {
	ServiceFee    decimal.Decimal `json:"serviceFee" validate:"required"`
	PerPoundRate  decimal.Decimal `json:"perPoundRate" validate:"required"`
	EffectiveFrom time.Time       `json:"effectiveFrom" validate:"required"`
}

// CreateFeeScheduleResponse returns the identifier of the created schedule.
type CreateFeeScheduleResponse struct {
	ScheduleID uuid.UUID `json:"scheduleId"`
}

// CreateSpecialItemRuleBody registers a fixed-fee pricing rule.
type CreateSpecialItemRuleBody struct {
	Category string          `json:"category" validate:"required"`
	Brand    string          `json:"brand" validate:"required"`
	ItemName string          `json:"itemName" validate:"required"`
	MinModel string          `json:"minModel" validate:"required"`
	MaxModel string          `json:"maxModel" validate:"required"`
	FixedFee decimal.Decimal `json:"fixedFee" validate:"required"`
}

// CreateSpecialItemRuleResponse returns the identifier of the created rule.
type CreateSpecialItemRuleResponse struct {
	RuleID uuid.UUID `json:"ruleId"`
}

// QuoteFeeBody asks for a fee preview without creating anything.
type QuoteFeeBody struct {
	Weight   *decimal.Decimal `json:"weight,omitempty"`
	Category string           `json:"category,omitempty"`
	Brand    string           `json:"brand,omitempty"`
	ItemName string           `json:"itemName,omitempty"`
	Model    string           `json:"model,omitempty"`
}

// QuoteFeeResponse is the computed fee preview.
type QuoteFeeResponse struct {
	ServiceFee  decimal.Decimal `json:"serviceFee"`
	VariableFee decimal.Decimal `json:"variableFee"`
	Total       decimal.Decimal `json:"total"`
	SpecialItem bool            `json:"specialItem"`
}

// PendingRequest is one entry of the staff work queue.
type PendingRequest struct {
	RequestID         uuid.UUID        `json:"requestId"`
	CustomerID        uuid.UUID        `json:"customerId"`
	CarrierReference  string           `json:"carrierReference"`
	Description       string           `json:"description"`
	EstimatedWeight   *decimal.Decimal `json:"estimatedWeight,omitempty"`
	DeclaredCategory  string           `json:"declaredCategory,omitempty"`
	ReviewWeight      decimal.Decimal  `json:"reviewWeight"`
	WeightConfirmed   bool             `json:"weightConfirmed"`
	ReviewCategory    string           `json:"reviewCategory,omitempty"`
	CategoryConfirmed bool             `json:"categoryConfirmed"`
	SubmittedAt       time.Time        `json:"submittedAt"`
}

// ParcelView is the tracking-page representation of a parcel.
type ParcelView struct {
	ParcelID       uuid.UUID            `json:"parcelId"`
	TrackingNumber string               `json:"trackingNumber"`
	Status         string               `json:"status"`
	Location       string               `json:"location"`
	Weight         decimal.Decimal      `json:"weight"`
	Category       string               `json:"category,omitempty"`
	ServiceFee     decimal.Decimal      `json:"serviceFee"`
	VariableFee    decimal.Decimal      `json:"variableFee"`
	Total          decimal.Decimal      `json:"total"`
	SpecialItem    bool                 `json:"specialItem"`
	DeliveredAt    *time.Time           `json:"deliveredAt,omitempty"`
	History        []TrackingHistoryRow `json:"history"`
}

// TrackingHistoryRow is one audit trail entry of a parcel.
type TrackingHistoryRow struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurredAt"`
	Description string    `json:"description,omitempty"`
	Override    bool      `json:"override"`
}
