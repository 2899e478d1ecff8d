// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work holds one database transaction; repositories
// obtained from it run inside that transaction, and aggregates they touch
// are tracked until commit.
package postgres

import (
	"context"

	"forwarding/internal/adapters/out/postgres/historyrepo"
	"forwarding/internal/adapters/out/postgres/parcelrepo"
	"forwarding/internal/adapters/out/postgres/pricingrepo"
	"forwarding/internal/adapters/out/postgres/requestrepo"
	"forwarding/internal/adapters/out/postgres/trackingseq"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the forwarding
// repositories. Repeated Begin calls on the same instance are no-ops; after
// Commit or Rollback the transaction is closed.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RequestRepository returns a request repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	return requestrepo.NewGormRequestRepository(uow.conn(), uow)
}

// ParcelRepository returns a parcel repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// HistoryRepository returns a history repository bound to the current
// transaction.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// FeeScheduleRepository returns a fee schedule repository bound to the
// current transaction.
func (uow *GormUnitOfWork) FeeScheduleRepository() ports.FeeScheduleRepository {
	return pricingrepo.NewGormFeeScheduleRepository(uow.conn())
}

// SpecialItemRuleRepository returns a special item rule repository bound to
// the current transaction.
func (uow *GormUnitOfWork) SpecialItemRuleRepository() ports.SpecialItemRuleRepository {
	return pricingrepo.NewGormSpecialItemRuleRepository(uow.conn())
}

// TrackingSequence returns a tracking sequence allocator bound to the
// current transaction.
func (uow *GormUnitOfWork) TrackingSequence() ports.TrackingSequence {
	return trackingseq.NewPostgresTrackingSequence(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
