package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	trackingNumber, err := parcel.NewTrackingNumber(2026, 42)
	require.NoError(t, err)
	weight, err := kernel.WeightFromString("5.0")
	require.NoError(t, err)
	serviceFee, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)
	variableFee, err := kernel.MoneyFromString("20.00")
	require.NoError(t, err)
	fee, err := pricing.NewFee(serviceFee, variableFee, nil)
	require.NoError(t, err)
	location, err := kernel.NewLocation("Miami Receiving Warehouse")
	require.NoError(t, err)

	aggregate, err := parcel.NewParcel(
		kernel.NewUUID(), trackingNumber, kernel.NewUUID(), kernel.NewUUID(),
		weight, "clothing", fee, location, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func arrivedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	aggregate := newTestParcel(t)
	transit, err := kernel.NewLocation("In Transit to Haiti")
	require.NoError(t, err)
	destination, err := kernel.NewLocation("Port-au-Prince Warehouse")
	require.NoError(t, err)

	require.NoError(t, aggregate.MarkInTransit("", transit, time.Now().UTC()))
	require.NoError(t, aggregate.RecordArrival(destination, time.Now().UTC()))
	aggregate.TakeUncommittedHistory()
	return aggregate
}

func TestMarkAvailableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := arrivedParcel(t)

	cmd, err := commands.NewMarkAvailableCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		parcelRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, mock.AnythingOfType("[]parcel.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, aggregate).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkAvailableCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Available, aggregate.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestMarkAvailableCommandHandler_Handle_NotAtFinalCheckpoint(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestParcel(t)
	transit, err := kernel.NewLocation("In Transit to Haiti")
	require.NoError(t, err)
	require.NoError(t, aggregate.MarkInTransit("", transit, time.Now().UTC()))

	cmd, err := commands.NewMarkAvailableCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkAvailableCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, parcel.ErrNotAtFinalCheckpoint)
	parcelRepo.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "NotifyStatusChanged")
}

func TestMarkAvailableCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	aggregate := arrivedParcel(t)

	cmd, err := commands.NewMarkAvailableCommand(aggregate.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockParcelUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	parcelRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	parcelRepo.On("Update", ctx, aggregate).Return(nil)
	historyRepo.On("Append", ctx, mock.AnythingOfType("[]parcel.HistoryEntry")).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, aggregate).Return(assert.AnError)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewMarkAvailableCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Available, aggregate.Status())
}
