package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInactiveDueSchedule(t *testing.T) *pricing.FeeSchedule {
	t.Helper()

	serviceFee, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)
	perPoundRate, err := kernel.MoneyFromString("4.00")
	require.NoError(t, err)

	schedule, err := pricing.NewFeeSchedule(
		kernel.NewUUID(), serviceFee, perPoundRate, time.Now().UTC().Add(-time.Hour), time.Now().UTC())
	require.NoError(t, err)

	return schedule
}

func TestActivateDueScheduleCommandHandler_Handle_ActivatesNewestDue(t *testing.T) {
	ctx := t.Context()
	schedule := newInactiveDueSchedule(t)

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("GetNewestDue", ctx, mock.AnythingOfType("time.Time")).Return(schedule, nil).Once(),
		scheduleRepo.On("Update", ctx, schedule).Return(nil).Once(),
		scheduleRepo.On("DeactivateAllExcept", ctx, schedule.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewActivateDueScheduleCommandHandler(factory)
	err := handler.Handle(ctx, commands.NewActivateDueScheduleCommand())

	require.NoError(t, err)
	assert.True(t, schedule.IsActive())
	uow.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestActivateDueScheduleCommandHandler_Handle_AlreadyActiveDoesNothing(t *testing.T) {
	ctx := t.Context()
	schedule := newInactiveDueSchedule(t)
	require.NoError(t, schedule.Activate(time.Now().UTC()))

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("GetNewestDue", ctx, mock.AnythingOfType("time.Time")).Return(schedule, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewActivateDueScheduleCommandHandler(factory)
	err := handler.Handle(ctx, commands.NewActivateDueScheduleCommand())

	require.NoError(t, err)
	scheduleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	scheduleRepo.AssertNotCalled(t, "DeactivateAllExcept", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestActivateDueScheduleCommandHandler_Handle_NoDueSchedule(t *testing.T) {
	ctx := t.Context()

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("GetNewestDue", ctx, mock.AnythingOfType("time.Time")).
			Return(nil, errs.NewObjectNotFoundError("dueFeeSchedule", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewActivateDueScheduleCommandHandler(factory)
	err := handler.Handle(ctx, commands.NewActivateDueScheduleCommand())

	require.ErrorIs(t, err, commands.ErrNoScheduleDue)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestActivateDueScheduleCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPricingUoWFactory)

	handler := commands.NewActivateDueScheduleCommandHandler(factory)
	err := handler.Handle(t.Context(), commands.ActivateDueScheduleCommand{})

	require.ErrorIs(t, err, commands.ErrActivateDueScheduleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
