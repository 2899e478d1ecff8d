package parcel

import (
	"fmt"
	"regexp"

	"forwarding/internal/pkg/errs"
)

// trackingPrefix is the fixed prefix of every internally issued tracking
// number.
const trackingPrefix = "PFH"

const (
	minTrackingYear = 2000
	maxTrackingYear = 2100
)

var trackingNumberPattern = regexp.MustCompile(`^` + trackingPrefix + `-\d{4}-\d{6,}$`)

// TrackingNumber is the externally visible identifier minted when a request
// is approved: the fixed prefix, the issue year, and a zero-padded sequence
// number, e.g. "PFH-2026-000123".
//
// Tracking numbers are unique for the life of the system and immutable once
// issued. They are built only from the tracking sequence allocator; the
// allocator fails closed rather than risk a duplicate.
type TrackingNumber struct {
	value string

	isConstructed bool
}

// NewTrackingNumber formats a TrackingNumber from an issue year and a
// sequence value. The sequence is zero-padded to six digits and grows
// naturally beyond that.
func NewTrackingNumber(year int, sequence int64) (TrackingNumber, error) {
	if year < minTrackingYear || year > maxTrackingYear {
		return TrackingNumber{}, errs.NewValueIsOutOfRangeError("year", year, minTrackingYear, maxTrackingYear)
	}
	if sequence <= 0 {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}

	return TrackingNumber{
		value:         fmt.Sprintf("%s-%d-%06d", trackingPrefix, year, sequence),
		isConstructed: true,
	}, nil
}

// TrackingNumberFromString parses a TrackingNumber from its string
// representation. Used when reconstructing from persistence or handling
// customer lookups.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match %s-YYYY-NNNNNN", s, trackingPrefix))
	}

	return TrackingNumber{value: s, isConstructed: true}, nil
}

// String returns the formatted tracking number.
func (n TrackingNumber) String() string {
	return n.value
}

// IsEqual compares two tracking numbers.
func (n TrackingNumber) IsEqual(other TrackingNumber) bool {
	return n.value == other.value
}

// Validate checks if the TrackingNumber was properly constructed.
func (n TrackingNumber) Validate() error {
	if !n.isConstructed {
		return errs.NewValueIsRequiredError("TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString")
	}
	return nil
}
