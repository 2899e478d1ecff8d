package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
)

// FeeScheduleRepository defines the persistence contract for fee schedules.
type FeeScheduleRepository interface {
	// Add persists a new fee schedule to storage.
	Add(ctx context.Context, schedule *pricing.FeeSchedule) error

	// Update persists changes to an existing fee schedule.
	Update(ctx context.Context, schedule *pricing.FeeSchedule) error

	// Get retrieves a fee schedule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.FeeSchedule, error)

	// GetActive retrieves the single currently active fee schedule.
	// Returns errs.ErrObjectNotFound when no schedule is active.
	GetActive(ctx context.Context) (*pricing.FeeSchedule, error)

	// GetNewestDue retrieves the schedule with the latest effective date that
	// is not after now. Used by the activation job to decide which schedule
	// should be live.
	GetNewestDue(ctx context.Context, now time.Time) (*pricing.FeeSchedule, error)

	// ExistsWithEffectiveDate reports whether a schedule already exists with
	// the given effective date. Effective dates are unique.
	ExistsWithEffectiveDate(ctx context.Context, effectiveDate time.Time) (bool, error)

	// DeactivateAllExcept clears the active flag on every schedule other than
	// the given one. Runs in the caller's transaction so that at most one
	// schedule is active at any point.
	DeactivateAllExcept(ctx context.Context, id kernel.UUID) error
}

// SpecialItemRuleRepository defines the persistence contract for special
// item pricing rules.
type SpecialItemRuleRepository interface {
	// Add persists a new special item rule to storage.
	Add(ctx context.Context, rule *pricing.SpecialItemRule) error

	// Update persists changes to an existing special item rule.
	Update(ctx context.Context, rule *pricing.SpecialItemRule) error

	// Get retrieves a special item rule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.SpecialItemRule, error)

	// GetAllActive retrieves every active rule. Matching against a concrete
	// item happens in the domain service, not in the query.
	GetAllActive(ctx context.Context) ([]*pricing.SpecialItemRule, error)
}
