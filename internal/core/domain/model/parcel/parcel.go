package parcel

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrNotAtFinalCheckpoint is returned when making a parcel available
	// before its arrival at the destination warehouse has been recorded.
	ErrNotAtFinalCheckpoint = errors.New("parcel has not reached its final checkpoint")

	// ErrArrivalRequiresTransit is returned when recording arrival for a
	// parcel that is not in transit.
	ErrArrivalRequiresTransit = errors.New("arrival can only be recorded for a parcel in transit")

	// ErrOverrideReasonIsRequired is returned when an administrative status
	// override is attempted without a documented reason.
	ErrOverrideReasonIsRequired = errors.New("override reason is required")
)

// Parcel is the aggregate root for a billable, trackable package. It is
// created only by approving a validated request, at which point the tracking
// number is minted and the fee locked in.
//
// Invariants:
//   - The tracking number is immutable once issued.
//   - Total fee = service fee + (fixed fee if a special item matched, else
//     weight x per-pound rate); fee fields change only on explicit weight
//     correction, never silently on read.
//   - Status moves strictly forward; corrections go through OverrideStatus
//     and are flagged as such.
//   - Every transition appends exactly one HistoryEntry. The entries
//     accumulate on the aggregate until the handler persists them in the
//     same transaction as the state change.
type Parcel struct {
	id                kernel.UUID
	trackingNumber    TrackingNumber
	requestID         kernel.UUID
	customerID        kernel.UUID
	weight            kernel.Weight
	category          string
	fee               pricing.Fee
	status            Status
	location          kernel.Location
	atFinalCheckpoint bool
	notificationsSent int
	deliveredAt       *time.Time
	proof             *ProofOfDelivery
	createdAt         time.Time

	uncommittedHistory []HistoryEntry

	isConstructed bool
}

// NewParcel creates a Parcel in Received status at the receiving warehouse,
// recording the initial history entry. Called exclusively from the request
// approval flow, after the validation gate has passed and the fee has been
// computed.
func NewParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	requestID kernel.UUID,
	customerID kernel.UUID,
	weight kernel.Weight,
	category string,
	fee pricing.Fee,
	receivingLocation kernel.Location,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        Received,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setRequestID(requestID),
		p.setCustomerID(customerID),
		p.setWeight(weight),
		p.setCategory(category),
		p.setFee(fee),
		p.setLocation(receivingLocation),
	); err != nil {
		return nil, err
	}

	if err := p.appendHistory(Received, receivingLocation, now,
		fmt.Sprintf("Package received at %s", receivingLocation), false); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence. No history entry is
// produced; restored parcels start with an empty uncommitted history.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	requestID kernel.UUID,
	customerID kernel.UUID,
	weight kernel.Weight,
	category string,
	fee pricing.Fee,
	status Status,
	location kernel.Location,
	atFinalCheckpoint bool,
	notificationsSent int,
	deliveredAt *time.Time,
	proof *ProofOfDelivery,
	createdAt time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Parcel{
		status:            status,
		atFinalCheckpoint: atFinalCheckpoint,
		notificationsSent: notificationsSent,
		deliveredAt:       deliveredAt,
		proof:             proof,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setRequestID(requestID),
		p.setCustomerID(customerID),
		p.setWeight(weight),
		p.setCategory(category),
		p.setFee(fee),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the internally issued tracking number.
func (p *Parcel) TrackingNumber() TrackingNumber {
	return p.trackingNumber
}

// RequestID returns the request the parcel was created from.
func (p *Parcel) RequestID() kernel.UUID {
	return p.requestID
}

// CustomerID returns the identity of the owning customer.
func (p *Parcel) CustomerID() kernel.UUID {
	return p.customerID
}

// Weight returns the authoritative weight.
func (p *Parcel) Weight() kernel.Weight {
	return p.weight
}

// Category returns the resolved category.
func (p *Parcel) Category() string {
	return p.category
}

// Fee returns the locked-in fee computation.
func (p *Parcel) Fee() pricing.Fee {
	return p.fee
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Location returns the parcel's current location.
func (p *Parcel) Location() kernel.Location {
	return p.location
}

// AtFinalCheckpoint reports whether arrival at the destination warehouse has
// been recorded.
func (p *Parcel) AtFinalCheckpoint() bool {
	return p.atFinalCheckpoint
}

// NotificationsSent returns how many ready-for-pickup notifications have
// been dispatched since the parcel became available.
func (p *Parcel) NotificationsSent() int {
	return p.notificationsSent
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Proof returns the attached proof of delivery, or nil before delivery.
func (p *Parcel) Proof() *ProofOfDelivery {
	return p.proof
}

// CreatedAt returns when the parcel was created from its request.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// MarkInTransit moves the parcel from Received to InTransit.
// note carries optional carrier or flight metadata for the history entry.
func (p *Parcel) MarkInTransit(note string, location kernel.Location, now time.Time) error {
	newStatus, err := p.status.Ship()
	if err != nil {
		return err
	}
	if err = location.Validate(); err != nil {
		return err
	}

	description := note
	if description == "" {
		description = fmt.Sprintf("Departed %s", p.location)
	}

	if err = p.appendHistory(newStatus, location, now, description, false); err != nil {
		return err
	}

	p.status = newStatus
	p.location = location
	return nil
}

// RecordArrival marks the parcel as having reached its final checkpoint,
// the destination warehouse, and updates its location. This is the explicit
// operational event that gates the Available transition. The status does
// not change; the location change still appends a history entry.
func (p *Parcel) RecordArrival(location kernel.Location, now time.Time) error {
	if p.status != InTransit {
		return ErrArrivalRequiresTransit
	}
	if err := location.Validate(); err != nil {
		return err
	}

	if err := p.appendHistory(p.status, location, now,
		fmt.Sprintf("Arrived at %s", location), false); err != nil {
		return err
	}

	p.atFinalCheckpoint = true
	p.location = location
	return nil
}

// MarkAvailable moves the parcel from InTransit to Available. Not reachable
// until RecordArrival has confirmed the parcel is at its final staging
// point. Resets the notification counter; the caller dispatches the
// ready-for-pickup notification after commit.
func (p *Parcel) MarkAvailable(now time.Time) error {
	newStatus, err := p.status.MakeAvailable()
	if err != nil {
		return err
	}
	if !p.atFinalCheckpoint {
		return ErrNotAtFinalCheckpoint
	}

	if err = p.appendHistory(newStatus, p.location, now, "Available for pickup", false); err != nil {
		return err
	}

	p.status = newStatus
	p.notificationsSent = 0
	return nil
}

// MarkDelivered moves the parcel from Available to Delivered. Proof of
// delivery is required and recorded as part of the same transition; the
// delivery timestamp is set exactly once.
func (p *Parcel) MarkDelivered(proof ProofOfDelivery, now time.Time) error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}
	if err = proof.Validate(); err != nil {
		return err
	}

	if err = p.appendHistory(newStatus, p.location, now,
		fmt.Sprintf("Delivered to %s", proof.ReceivedBy()), false); err != nil {
		return err
	}

	p.status = newStatus
	p.proof = &proof
	p.deliveredAt = &now
	return nil
}

// RecordNotification increments the notification counter after a customer
// notification was dispatched.
func (p *Parcel) RecordNotification() {
	p.notificationsSent++
}

// OverrideStatus applies an administrative status correction outside the
// forward state machine. The entry appended to the history is flagged as an
// override so corrections are always distinguishable from normal
// progression. Overriding away from Delivered clears the delivery record.
func (p *Parcel) OverrideStatus(newStatus Status, reason string, staffID kernel.UUID, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return ErrOverrideReasonIsRequired
	}
	if err := staffID.Validate(); err != nil {
		return err
	}

	if err := p.appendHistory(newStatus, p.location, now,
		fmt.Sprintf("Status corrected from %s to %s by staff %s: %s", p.status, newStatus, staffID, reason),
		true); err != nil {
		return err
	}

	p.status = newStatus
	if newStatus != Delivered {
		p.deliveredAt = nil
		p.proof = nil
	}
	return nil
}

// CorrectWeight applies an administrative weight correction together with
// the fee recomputed from it. This is the only path that changes fee fields
// after approval.
func (p *Parcel) CorrectWeight(weight kernel.Weight, fee pricing.Fee, staffID kernel.UUID, now time.Time) error {
	if err := errors.Join(
		weight.Validate(),
		fee.Validate(),
		staffID.Validate(),
	); err != nil {
		return err
	}

	if err := p.appendHistory(p.status, p.location, now,
		fmt.Sprintf("Weight corrected from %s lb to %s lb by staff %s", p.weight, weight, staffID),
		true); err != nil {
		return err
	}

	p.weight = weight
	p.fee = fee
	return nil
}

// TakeUncommittedHistory returns the history entries produced since the
// aggregate was loaded and clears the internal buffer. The caller must
// persist the returned entries in the same transaction as the aggregate.
func (p *Parcel) TakeUncommittedHistory() []HistoryEntry {
	entries := p.uncommittedHistory
	p.uncommittedHistory = nil
	return entries
}

// UncommittedHistory returns the not-yet-persisted history entries without
// clearing them.
func (p *Parcel) UncommittedHistory() []HistoryEntry {
	return p.uncommittedHistory
}

func (p *Parcel) appendHistory(status Status, location kernel.Location, now time.Time, description string, override bool) error {
	entry, err := NewHistoryEntry(p.id, status, location, now, description, override)
	if err != nil {
		return err
	}

	p.uncommittedHistory = append(p.uncommittedHistory, entry)
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	p.requestID = requestID
	return nil
}

func (p *Parcel) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Parcel) setFee(fee pricing.Fee) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	p.fee = fee
	return nil
}

func (p *Parcel) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
