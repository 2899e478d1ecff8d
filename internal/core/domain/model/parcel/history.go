package parcel

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry is one record in a parcel's append-only tracking history:
// the status and location after a change, when it happened, and a human
// readable description. Entries flagged as overrides come from the
// administrative correction path rather than normal forward progression.
//
// History is the audit trail proving the state machine's transition
// sequence. Entries are never mutated or deleted; the persistence layer
// exposes no update path for them.
type HistoryEntry struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	status      Status
	location    kernel.Location
	occurredAt  time.Time
	description string
	override    bool

	isConstructed bool
}

// NewHistoryEntry creates a HistoryEntry with a fresh identifier.
func NewHistoryEntry(
	parcelID kernel.UUID,
	status Status,
	location kernel.Location,
	occurredAt time.Time,
	description string,
	override bool,
) (HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), parcelID, status, location, occurredAt, description, override)
}

// RestoreHistoryEntry reconstructs a HistoryEntry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	location kernel.Location,
	occurredAt time.Time,
	description string,
	override bool,
) (HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		status.Validate(),
		location.Validate(),
	); err != nil {
		return HistoryEntry{}, err
	}
	if occurredAt.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		location:      location,
		occurredAt:    occurredAt,
		description:   description,
		override:      override,
		isConstructed: true,
	}, nil
}

// Validate ensures the HistoryEntry was created through a constructor.
func (e HistoryEntry) Validate() error {
	if !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e HistoryEntry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the parcel the entry belongs to.
func (e HistoryEntry) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the parcel status after the recorded change.
func (e HistoryEntry) Status() Status {
	return e.status
}

// Location returns the parcel location after the recorded change.
func (e HistoryEntry) Location() kernel.Location {
	return e.location
}

// OccurredAt returns when the change happened.
func (e HistoryEntry) OccurredAt() time.Time {
	return e.occurredAt
}

// Description returns the human-readable note for the change.
func (e HistoryEntry) Description() string {
	return e.description
}

// IsOverride reports whether the entry came from the administrative
// correction path.
func (e HistoryEntry) IsOverride() bool {
	return e.override
}
