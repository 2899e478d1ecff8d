package request

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status represents the lifecycle state of a package request.
// It implements a small state machine with defined transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are terminal: a resolved request is immutable.
// Approval additionally requires the validation gate to pass; that rule
// lives on the Request aggregate, not here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted request awaiting
	// staff review.
	Pending

	// Approved indicates the request passed validation and was converted
	// into a parcel. Terminal.
	Approved

	// Rejected indicates staff declined the request. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Approved, and Rejected.
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

// IsResolved reports whether the status is terminal.
func (s Status) IsResolved() bool {
	return s == Approved || s == Rejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Returns (0, error) from any other status.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns (0, error) from any other status.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}
