package ports

import "context"

// TrackingSequence allocates the monotonically increasing per-year sequence
// used to mint tracking numbers. Implementations must be safe under
// concurrent allocation: two allocations never observe the same value, and a
// failure must surface as an error rather than a reused or skipped-backwards
// number.
type TrackingSequence interface {
	// Next returns the next sequence value for the given year, starting at 1.
	Next(ctx context.Context, year int) (int64, error)
}
