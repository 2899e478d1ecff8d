package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateFeeScheduleCommandHandler_Handle_ImmediateActivation(t *testing.T) {
	ctx := t.Context()
	scheduleID := kernel.NewUUID()
	effectiveFrom := time.Now().UTC().Add(-time.Hour)

	cmd, err := commands.NewCreateFeeScheduleCommand(
		scheduleID, decimal.RequireFromString("5.00"), decimal.RequireFromString("4.00"), effectiveFrom)
	require.NoError(t, err)

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	var stored *pricing.FeeSchedule
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("ExistsWithEffectiveDate", ctx, effectiveFrom).Return(false, nil).Once(),
		scheduleRepo.On("Add", ctx, mock.AnythingOfType("*pricing.FeeSchedule")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*pricing.FeeSchedule)
			}).Return(nil).Once(),
		scheduleRepo.On("DeactivateAllExcept", ctx, scheduleID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateFeeScheduleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive())
	uow.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestCreateFeeScheduleCommandHandler_Handle_FutureDateStaysInactive(t *testing.T) {
	ctx := t.Context()
	effectiveFrom := time.Now().UTC().Add(24 * time.Hour)

	cmd, err := commands.NewCreateFeeScheduleCommand(
		kernel.NewUUID(), decimal.RequireFromString("6.00"), decimal.RequireFromString("4.50"), effectiveFrom)
	require.NoError(t, err)

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	var stored *pricing.FeeSchedule
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("ExistsWithEffectiveDate", ctx, effectiveFrom).Return(false, nil).Once(),
		scheduleRepo.On("Add", ctx, mock.AnythingOfType("*pricing.FeeSchedule")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*pricing.FeeSchedule)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateFeeScheduleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive())
	scheduleRepo.AssertNotCalled(t, "DeactivateAllExcept")
}

func TestCreateFeeScheduleCommandHandler_Handle_DuplicateEffectiveDate(t *testing.T) {
	ctx := t.Context()
	effectiveFrom := time.Now().UTC().Add(-time.Hour)

	cmd, err := commands.NewCreateFeeScheduleCommand(
		kernel.NewUUID(), decimal.RequireFromString("5.00"), decimal.RequireFromString("4.00"), effectiveFrom)
	require.NoError(t, err)

	scheduleRepo := new(MockFeeScheduleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("ExistsWithEffectiveDate", ctx, effectiveFrom).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateFeeScheduleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEffectiveDateIsTaken)
	scheduleRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}
