package kernel

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

// maxLocationLength bounds location names to what the tracking history
// column can hold.
const maxLocationLength = 120

// Location is a value object naming a physical point along the forwarding
// route: the receiving warehouse in the USA, the destination warehouse in
// Haiti, a customs checkpoint, or the final delivery address area.
//
// Locations are free-form but never empty; every tracking history entry
// records where the package was when its status changed.
//
// The zero value of Location is invalid and must be constructed via
// NewLocation.
type Location struct {
	name string

	isConstructed bool
}

// NewLocation creates a Location from a non-empty name.
// Surrounding whitespace is trimmed.
func NewLocation(name string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}
	if len(name) > maxLocationLength {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("%d characters exceeds maximum of %d", len(name), maxLocationLength))
	}

	return Location{name: name, isConstructed: true}, nil
}

// String returns the location name.
func (l Location) String() string {
	return l.name
}

// IsEqual compares two locations by name.
func (l Location) IsEqual(other Location) bool {
	return l.name == other.name
}

// Validate checks if the Location was properly constructed.
func (l Location) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsRequiredError("Location must be created via NewLocation")
	}
	return nil
}
