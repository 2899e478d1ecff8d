package parcel

import (
	"forwarding/internal/pkg/errs"
)

// ProofOfDelivery is the evidence attached when a parcel is handed over:
// who received it and a reference to the captured signature or photo.
// Both fields are required; a delivery cannot be recorded without proof.
//
// The zero value is invalid and must be constructed via NewProofOfDelivery.
type ProofOfDelivery struct {
	receivedBy        string
	evidenceReference string

	isConstructed bool
}

// NewProofOfDelivery creates a ProofOfDelivery.
// receivedBy is the recipient's name as recorded at handover;
// evidenceReference points at the stored signature or photo.
func NewProofOfDelivery(receivedBy, evidenceReference string) (ProofOfDelivery, error) {
	if receivedBy == "" {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("receivedBy")
	}
	if evidenceReference == "" {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("evidenceReference")
	}

	return ProofOfDelivery{
		receivedBy:        receivedBy,
		evidenceReference: evidenceReference,
		isConstructed:     true,
	}, nil
}

// ReceivedBy returns the name of the person who accepted the parcel.
func (p ProofOfDelivery) ReceivedBy() string {
	return p.receivedBy
}

// EvidenceReference returns the stored signature or photo reference.
func (p ProofOfDelivery) EvidenceReference() string {
	return p.evidenceReference
}

// Validate checks if the ProofOfDelivery was properly constructed.
func (p ProofOfDelivery) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("ProofOfDelivery must be created via NewProofOfDelivery")
	}
	return nil
}
