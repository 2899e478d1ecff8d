package parcel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a strictly forward state machine:
//
//	Received ──> InTransit ──> Available ──> Delivered
//
// Backward transitions are not part of the model. Corrections go through the
// administrative override path on the aggregate, which is logged distinctly
// from normal progression.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status: the package arrived at the receiving
	// warehouse and the request was approved.
	Received

	// InTransit indicates the package left the receiving warehouse toward
	// Haiti.
	InTransit

	// Available indicates the package reached its final staging point and
	// can be picked up or delivered.
	Available

	// Delivered indicates the package was handed to the recipient.
	// This is a final state with no further forward transitions.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		InTransit: "InTransit",
		Available: "Available",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "Received",
		InTransit: "InTransit",
		Available: "Available",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Received, InTransit, Available, and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name produced by String.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Ship transitions the status to InTransit.
//
// Valid transitions:
//   - Received -> InTransit
func (s Status) Ship() (Status, error) {
	if s != Received {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return InTransit, nil
}

// MakeAvailable transitions the status to Available.
//
// Valid transitions:
//   - InTransit -> Available
//
// The aggregate additionally requires the final-checkpoint flag; this method
// only enforces status ordering.
func (s Status) MakeAvailable() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to make available", s.String()),
		)
	}

	return Available, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Available -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
