// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence.
package parcelrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The fee triple is stored denormalized; it changes only on
// explicit weight correction.
type ParcelDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string    `gorm:"uniqueIndex"`
	RequestID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	Weight            decimal.Decimal `gorm:"type:numeric(8,2)"`
	Category          string
	ServiceFee        decimal.Decimal `gorm:"type:numeric(12,2)"`
	VariableFee       decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalFee          decimal.Decimal `gorm:"type:numeric(12,2)"`
	AppliedRuleID     *uuid.UUID      `gorm:"type:uuid"`
	Status            int             `gorm:"index"`
	Location          string
	AtFinalCheckpoint bool
	NotificationsSent int
	DeliveredAt       *time.Time
	ProofReceivedBy   *string
	ProofEvidenceRef  *string
	CreatedAt         time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	fee := aggregate.Fee()
	var appliedRuleID *uuid.UUID
	if id := fee.AppliedRuleID(); id != nil {
		raw := id.Bytes()
		appliedRuleID = &raw
	}

	var proofReceivedBy, proofEvidenceRef *string
	if proof := aggregate.Proof(); proof != nil {
		receivedBy := proof.ReceivedBy()
		evidenceRef := proof.EvidenceReference()
		proofReceivedBy = &receivedBy
		proofEvidenceRef = &evidenceRef
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		RequestID:         aggregate.RequestID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		Weight:            aggregate.Weight().Pounds(),
		Category:          aggregate.Category(),
		ServiceFee:        fee.ServiceFee().Amount(),
		VariableFee:       fee.VariableFee().Amount(),
		TotalFee:          fee.Total().Amount(),
		AppliedRuleID:     appliedRuleID,
		Status:            int(aggregate.Status()),
		Location:          aggregate.Location().String(),
		AtFinalCheckpoint: aggregate.AtFinalCheckpoint(),
		NotificationsSent: aggregate.NotificationsSent(),
		DeliveredAt:       aggregate.DeliveredAt(),
		ProofReceivedBy:   proofReceivedBy,
		ProofEvidenceRef:  proofEvidenceRef,
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := parcel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	fee, err := restoreFee(dto)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	var proof *parcel.ProofOfDelivery
	if dto.ProofReceivedBy != nil && dto.ProofEvidenceRef != nil {
		p, proofErr := parcel.NewProofOfDelivery(*dto.ProofReceivedBy, *dto.ProofEvidenceRef)
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		requestID,
		customerID,
		weight,
		dto.Category,
		fee,
		parcel.Status(dto.Status),
		location,
		dto.AtFinalCheckpoint,
		dto.NotificationsSent,
		dto.DeliveredAt,
		proof,
		dto.CreatedAt,
	)
}

func restoreFee(dto ParcelDTO) (pricing.Fee, error) {
	serviceFee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return pricing.Fee{}, err
	}

	variableFee, err := kernel.NewMoney(dto.VariableFee)
	if err != nil {
		return pricing.Fee{}, err
	}

	total, err := kernel.NewMoney(dto.TotalFee)
	if err != nil {
		return pricing.Fee{}, err
	}

	var appliedRuleID *kernel.UUID
	if dto.AppliedRuleID != nil {
		ruleID, ruleErr := kernel.UUIDFromBytes((*dto.AppliedRuleID)[:])
		if ruleErr != nil {
			return pricing.Fee{}, ruleErr
		}
		appliedRuleID = &ruleID
	}

	return pricing.RestoreFee(serviceFee, variableFee, total, appliedRuleID)
}
