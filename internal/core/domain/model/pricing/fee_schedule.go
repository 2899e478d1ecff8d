package pricing

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrFeeScheduleIsNotConstructed is returned when a FeeSchedule instance was
	// not created through NewFeeSchedule or RestoreFeeSchedule.
	ErrFeeScheduleIsNotConstructed = errors.New("FeeSchedule must be created via NewFeeSchedule or RestoreFeeSchedule")

	// ErrScheduleNotYetEffective is returned when activating a schedule whose
	// effective date has not arrived.
	ErrScheduleNotYetEffective = errors.New("fee schedule effective date has not arrived")
)

// FeeSchedule is the time-versioned pair of pricing inputs in effect at a
// given moment: the flat service fee charged on every package and the
// per-pound rate applied to weight-based pricing.
//
// Invariants:
//   - At most one schedule is active at any time. That invariant spans rows
//     and is enforced by the repository's exclusive activation operation;
//     the aggregate only tracks its own flag.
//   - Service fee and per-pound rate are non-negative (guaranteed by Money).
//   - A schedule never activates before its effective date.
type FeeSchedule struct {
	id            kernel.UUID
	serviceFee    kernel.Money
	perPoundRate  kernel.Money
	effectiveFrom time.Time
	active        bool
	createdAt     time.Time

	isConstructed bool
}

// NewFeeSchedule creates an inactive FeeSchedule. Activation is a separate,
// repository-coordinated step so the previous schedule can be deactivated in
// the same transaction.
func NewFeeSchedule(
	id kernel.UUID,
	serviceFee kernel.Money,
	perPoundRate kernel.Money,
	effectiveFrom time.Time,
	createdAt time.Time,
) (*FeeSchedule, error) {
	if err := errors.Join(
		id.Validate(),
		serviceFee.Validate(),
		perPoundRate.Validate(),
	); err != nil {
		return nil, err
	}
	if effectiveFrom.IsZero() {
		return nil, errs.NewValueIsRequiredError("effectiveFrom")
	}

	return &FeeSchedule{
		id:            id,
		serviceFee:    serviceFee,
		perPoundRate:  perPoundRate,
		effectiveFrom: effectiveFrom,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreFeeSchedule reconstructs a FeeSchedule from persistence.
func RestoreFeeSchedule(
	id kernel.UUID,
	serviceFee kernel.Money,
	perPoundRate kernel.Money,
	effectiveFrom time.Time,
	active bool,
	createdAt time.Time,
) (*FeeSchedule, error) {
	schedule, err := NewFeeSchedule(id, serviceFee, perPoundRate, effectiveFrom, createdAt)
	if err != nil {
		return nil, err
	}

	schedule.active = active
	return schedule, nil
}

// Validate ensures the FeeSchedule was created through a constructor.
func (s *FeeSchedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrFeeScheduleIsNotConstructed
	}
	return nil
}

// ID returns the schedule's unique identifier.
func (s *FeeSchedule) ID() kernel.UUID {
	return s.id
}

// ServiceFee returns the flat service fee charged on every package.
func (s *FeeSchedule) ServiceFee() kernel.Money {
	return s.serviceFee
}

// PerPoundRate returns the rate applied per pound of package weight.
func (s *FeeSchedule) PerPoundRate() kernel.Money {
	return s.perPoundRate
}

// EffectiveFrom returns the instant from which the schedule may be active.
func (s *FeeSchedule) EffectiveFrom() time.Time {
	return s.effectiveFrom
}

// IsActive reports whether this schedule is the one currently in effect.
func (s *FeeSchedule) IsActive() bool {
	return s.active
}

// CreatedAt returns the schedule's creation time.
func (s *FeeSchedule) CreatedAt() time.Time {
	return s.createdAt
}

// IsDue reports whether the schedule's effective date has arrived.
func (s *FeeSchedule) IsDue(now time.Time) bool {
	return !s.effectiveFrom.After(now)
}

// Activate marks the schedule active. The caller must deactivate the
// previously active schedule within the same transaction.
func (s *FeeSchedule) Activate(now time.Time) error {
	if !s.IsDue(now) {
		return ErrScheduleNotYetEffective
	}

	s.active = true
	return nil
}

// Deactivate marks the schedule inactive.
func (s *FeeSchedule) Deactivate() {
	s.active = false
}
