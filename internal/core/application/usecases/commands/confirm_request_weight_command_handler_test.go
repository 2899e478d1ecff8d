package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T) *request.Request {
	t.Helper()

	aggregate, err := request.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), "1Z999AA10123456784", "box of clothing",
		nil, "", "", "Marie Joseph", "", time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestConfirmRequestWeightCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	aggregate := newPendingRequest(t)
	require.NoError(t, aggregate.SetWeight(decimal.RequireFromString("5"), reviewer))

	cmd, err := commands.NewConfirmRequestWeightCommand(aggregate.ID(), reviewer)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		requestRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRequestWeightCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, aggregate.Review().IsWeightConfirmed())
	uow.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
}

func TestConfirmRequestWeightCommandHandler_Handle_ZeroWeightRejected(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	aggregate := newPendingRequest(t)
	require.NoError(t, aggregate.SetWeight(decimal.Zero, reviewer))

	cmd, err := commands.NewConfirmRequestWeightCommand(aggregate.ID(), reviewer)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRequestWeightCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, request.ErrWeightIsNotPositive)
	assert.False(t, aggregate.Review().IsWeightConfirmed())
	requestRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestConfirmRequestWeightCommandHandler_Handle_ResolvedRequestRejected(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	aggregate := newPendingRequest(t)
	require.NoError(t, aggregate.Reject())

	cmd, err := commands.NewConfirmRequestWeightCommand(aggregate.ID(), reviewer)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRequestWeightCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, request.ErrRequestIsResolved)
}
