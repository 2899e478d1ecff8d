package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingPhoneRule(t *testing.T, minModel, maxModel string) *pricing.SpecialItemRule {
	t.Helper()

	fee, err := kernel.MoneyFromString("20.00")
	require.NoError(t, err)
	rule, err := pricing.NewSpecialItemRule(
		kernel.NewUUID(), "phone", "Apple", "iPhone", minModel, maxModel, fee, time.Now().UTC())
	require.NoError(t, err)
	return rule
}

func TestCreateSpecialItemRuleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateSpecialItemRuleCommand(
		kernel.NewUUID(), "phone", "Apple", "iPhone", "15", "17", decimal.RequireFromString("25.00"))
	require.NoError(t, err)

	ruleRepo := new(MockSpecialItemRuleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SpecialItemRuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllActive", ctx).
			Return([]*pricing.SpecialItemRule{existingPhoneRule(t, "12", "14")}, nil).Once(),
		ruleRepo.On("Add", ctx, mock.AnythingOfType("*pricing.SpecialItemRule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateSpecialItemRuleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	ruleRepo.AssertExpectations(t)
}

func TestCreateSpecialItemRuleCommandHandler_Handle_OverlapRejected(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateSpecialItemRuleCommand(
		kernel.NewUUID(), "phone", "Apple", "iPhone", "13", "15", decimal.RequireFromString("25.00"))
	require.NoError(t, err)

	ruleRepo := new(MockSpecialItemRuleRepository)
	uow := new(MockPricingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SpecialItemRuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllActive", ctx).
			Return([]*pricing.SpecialItemRule{existingPhoneRule(t, "12", "14")}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateSpecialItemRuleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRuleRangeOverlaps)
	ruleRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateSpecialItemRuleCommandHandler_Handle_InvertedRangeRejected(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateSpecialItemRuleCommand(
		kernel.NewUUID(), "phone", "Apple", "iPhone", "17", "15", decimal.RequireFromString("25.00"))
	require.NoError(t, err)

	factory := new(MockPricingUoWFactory)
	handler := commands.NewCreateSpecialItemRuleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, pricing.ErrModelRangeIsInverted)
	factory.AssertNotCalled(t, "Create")
}
