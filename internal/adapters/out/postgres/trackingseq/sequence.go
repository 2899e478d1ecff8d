// Package trackingseq allocates tracking number sequence values from a
// per-year postgres counter.
package trackingseq

import (
	"context"

	"gorm.io/gorm"
)

// SequenceDTO represents the per-year counter row behind tracking number
// allocation.
type SequenceDTO struct {
	Year  int   `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}

// TableName specifies the database table name for tracking sequences.
func (SequenceDTO) TableName() string {
	return "tracking_sequences"
}

// PostgresTrackingSequence implements TrackingSequence with a single-statement
// atomic upsert. There is no read-then-write window: concurrent allocations
// serialize on the row and each one observes a distinct value. Any error
// surfaces to the caller so approval fails closed instead of minting a
// duplicate or missing number.
type PostgresTrackingSequence struct {
	db *gorm.DB
}

// NewPostgresTrackingSequence creates a tracking sequence allocator.
func NewPostgresTrackingSequence(db *gorm.DB) *PostgresTrackingSequence {
	return &PostgresTrackingSequence{db: db}
}

// Next returns the next sequence value for the given year, starting at 1.
func (s *PostgresTrackingSequence) Next(ctx context.Context, year int) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO tracking_sequences (year, value)
		VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET value = tracking_sequences.value + 1
		RETURNING value
	`, year).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
