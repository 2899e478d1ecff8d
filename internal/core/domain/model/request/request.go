package request

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

	// ErrRequestIsResolved is returned when editing or resolving a request
	// that has already been approved or rejected.
	ErrRequestIsResolved = errors.New("request is already resolved and immutable")
)

// Request is the aggregate root for a customer's package-forwarding request:
// an external carrier tracking reference plus a description of what is
// coming, submitted before the package arrives at the receiving warehouse.
//
// Invariants:
//   - Never billable; carries no fee fields.
//   - The customer's estimated weight is advisory only; billing uses the
//     staff-confirmed weight from the embedded Review.
//   - Approval requires the validation gate to pass: weight confirmed,
//     category confirmed, weight > 0.
//   - Once approved or rejected the request is immutable.
type Request struct {
	id               kernel.UUID
	customerID       kernel.UUID
	carrierReference string
	description      string
	estimatedWeight  *decimal.Decimal
	declaredCategory string
	notes            string
	recipientName    string
	recipientPhone   string
	status           Status
	review           Review
	createdAt        time.Time

	isConstructed bool
}

// NewRequest creates a pending Request from a customer submission.
//
// estimatedWeight and declaredCategory are optional (nil / empty); notes may
// be empty. The carrier reference, description, and recipient name are
// required.
func NewRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	carrierReference string,
	description string,
	estimatedWeight *decimal.Decimal,
	declaredCategory string,
	notes string,
	recipientName string,
	recipientPhone string,
	createdAt time.Time,
) (*Request, error) {
	req := &Request{
		status:        Pending,
		review:        NewReview(),
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setCustomerID(customerID),
		req.setCarrierReference(carrierReference),
		req.setDescription(description),
		req.setEstimatedWeight(estimatedWeight),
		req.setRecipient(recipientName, recipientPhone),
	); err != nil {
		return nil, err
	}

	req.declaredCategory = declaredCategory
	return req, nil
}

// RestoreRequest reconstructs a Request from persistence.
func RestoreRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	carrierReference string,
	description string,
	estimatedWeight *decimal.Decimal,
	declaredCategory string,
	notes string,
	recipientName string,
	recipientPhone string,
	status Status,
	review Review,
	createdAt time.Time,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	req, err := NewRequest(id, customerID, carrierReference, description,
		estimatedWeight, declaredCategory, notes, recipientName, recipientPhone, createdAt)
	if err != nil {
		return nil, err
	}

	req.status = status
	req.review = review
	return req, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the identity of the customer who owns the request.
func (r *Request) CustomerID() kernel.UUID {
	return r.customerID
}

// CarrierReference returns the external carrier's tracking reference.
func (r *Request) CarrierReference() string {
	return r.carrierReference
}

// Description returns the customer's free-text description of the contents.
func (r *Request) Description() string {
	return r.description
}

// EstimatedWeight returns the customer's advisory weight estimate, or nil.
func (r *Request) EstimatedWeight() *decimal.Decimal {
	return r.estimatedWeight
}

// DeclaredCategory returns the customer's declared category, possibly empty.
func (r *Request) DeclaredCategory() string {
	return r.declaredCategory
}

// Notes returns the customer's free-text notes.
func (r *Request) Notes() string {
	return r.notes
}

// RecipientName returns the name of the recipient in Haiti.
func (r *Request) RecipientName() string {
	return r.recipientName
}

// RecipientPhone returns the recipient's phone number, possibly empty.
func (r *Request) RecipientPhone() string {
	return r.recipientPhone
}

// Status returns the current status of the request.
func (r *Request) Status() Status {
	return r.status
}

// Review returns the staff-side validation state.
func (r *Request) Review() Review {
	return r.review
}

// CreatedAt returns the submission time.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// SetWeight records the authoritative weight measured by staff and clears
// the weight confirmation flag. Rejected once the request is resolved.
func (r *Request) SetWeight(weight decimal.Decimal, reviewer kernel.UUID) error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}
	return r.review.setWeight(weight, reviewer)
}

// ConfirmWeight confirms the recorded weight. Rejects non-positive weight.
func (r *Request) ConfirmWeight(reviewer kernel.UUID) error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}
	return r.review.confirmWeight(reviewer)
}

// SetCategory records the authoritative category chosen by staff and clears
// the category confirmation flag.
func (r *Request) SetCategory(category string, reviewer kernel.UUID) error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}
	return r.review.setCategory(category, reviewer)
}

// ConfirmCategory confirms the recorded category.
func (r *Request) ConfirmCategory(reviewer kernel.UUID) error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}
	return r.review.confirmCategory(reviewer)
}

// CanApprove reports whether the validation gate is satisfied.
func (r *Request) CanApprove() bool {
	return r.status == Pending && r.review.readyForApproval() == nil
}

// Approve resolves the request as approved.
//
// This is the gate's central contract: approval fails, with the specific
// blocking reason and no state change, unless both confirmation flags are
// set and the weight is positive. The caller converts the approved request
// into a billable parcel in the same transaction.
func (r *Request) Approve() error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}
	if err := r.review.readyForApproval(); err != nil {
		return err
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject resolves the request as rejected. Always permitted while the
// request is unresolved; terminal afterwards.
func (r *Request) Reject() error {
	if err := r.ensureUnresolved(); err != nil {
		return err
	}

	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// ConfirmedWeight returns the staff-confirmed weight as a Weight value
// object. Only meaningful once the gate has passed; errors otherwise.
func (r *Request) ConfirmedWeight() (kernel.Weight, error) {
	if err := r.review.readyForApproval(); err != nil {
		return kernel.Weight{}, err
	}
	return kernel.NewWeight(r.review.Weight())
}

// ConfirmedCategory returns the staff-confirmed category.
func (r *Request) ConfirmedCategory() string {
	return r.review.Category()
}

func (r *Request) ensureUnresolved() error {
	if r.status.IsResolved() {
		return ErrRequestIsResolved
	}
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Request) setCarrierReference(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("carrierReference")
	}
	r.carrierReference = ref
	return nil
}

func (r *Request) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

func (r *Request) setEstimatedWeight(weight *decimal.Decimal) error {
	if weight == nil {
		return nil
	}
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	r.estimatedWeight = weight
	return nil
}

func (r *Request) setRecipient(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	r.recipientName = name
	r.recipientPhone = phone
	return nil
}
