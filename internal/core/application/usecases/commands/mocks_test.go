package commands_test

import (
	"context"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/core/domain/model/request"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetAllPending(ctx context.Context) ([]*request.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.Request), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, tn parcel.TrackingNumber) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entries []parcel.HistoryEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) ([]parcel.HistoryEntry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]parcel.HistoryEntry), args.Error(1)
}

type MockFeeScheduleRepository struct{ mock.Mock }

func (m *MockFeeScheduleRepository) Add(ctx context.Context, s *pricing.FeeSchedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockFeeScheduleRepository) Update(ctx context.Context, s *pricing.FeeSchedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockFeeScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.FeeSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FeeSchedule), args.Error(1)
}

func (m *MockFeeScheduleRepository) GetActive(ctx context.Context) (*pricing.FeeSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FeeSchedule), args.Error(1)
}

func (m *MockFeeScheduleRepository) GetNewestDue(ctx context.Context, now time.Time) (*pricing.FeeSchedule, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FeeSchedule), args.Error(1)
}

func (m *MockFeeScheduleRepository) ExistsWithEffectiveDate(ctx context.Context, effectiveDate time.Time) (bool, error) {
	args := m.Called(ctx, effectiveDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeeScheduleRepository) DeactivateAllExcept(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSpecialItemRuleRepository struct{ mock.Mock }

func (m *MockSpecialItemRuleRepository) Add(ctx context.Context, r *pricing.SpecialItemRule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSpecialItemRuleRepository) Update(ctx context.Context, r *pricing.SpecialItemRule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSpecialItemRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.SpecialItemRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.SpecialItemRule), args.Error(1)
}

func (m *MockSpecialItemRuleRepository) GetAllActive(ctx context.Context) ([]*pricing.SpecialItemRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.SpecialItemRule), args.Error(1)
}

type MockTrackingSequence struct{ mock.Mock }

func (m *MockTrackingSequence) Next(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockPricingUoW struct{ mock.Mock }

func (m *MockPricingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.FeeScheduleRepository)
}

func (m *MockPricingUoW) SpecialItemRuleRepository() ports.SpecialItemRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.SpecialItemRuleRepository)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

type MockApprovalUoW struct{ mock.Mock }

func (m *MockApprovalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockApprovalUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockApprovalUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockApprovalUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.FeeScheduleRepository)
}

func (m *MockApprovalUoW) SpecialItemRuleRepository() ports.SpecialItemRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.SpecialItemRuleRepository)
}

func (m *MockApprovalUoW) TrackingSequence() ports.TrackingSequence {
	args := m.Called()
	return args.Get(0).(ports.TrackingSequence)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	args := m.Called()
	return args.Get(0).(commands.ApprovalUoW)
}

type MockCorrectionUoW struct{ mock.Mock }

func (m *MockCorrectionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCorrectionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCorrectionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCorrectionUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockCorrectionUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockCorrectionUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.FeeScheduleRepository)
}

func (m *MockCorrectionUoW) SpecialItemRuleRepository() ports.SpecialItemRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.SpecialItemRuleRepository)
}

type MockCorrectionUoWFactory struct{ mock.Mock }

func (m *MockCorrectionUoWFactory) Create() commands.CorrectionUoW {
	args := m.Called()
	return args.Get(0).(commands.CorrectionUoW)
}
