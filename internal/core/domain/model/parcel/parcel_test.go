package parcel_test

import (
	"testing"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(name)
	require.NoError(t, err)
	return loc
}

func mustFee(t *testing.T, service, variable string) pricing.Fee {
	t.Helper()
	serviceFee, err := kernel.MoneyFromString(service)
	require.NoError(t, err)
	variableFee, err := kernel.MoneyFromString(variable)
	require.NoError(t, err)
	fee, err := pricing.NewFee(serviceFee, variableFee, nil)
	require.NoError(t, err)
	return fee
}

func newReceivedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	trackingNumber, err := parcel.NewTrackingNumber(2026, 42)
	require.NoError(t, err)

	weight, err := kernel.WeightFromString("5.0")
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		trackingNumber,
		kernel.NewUUID(),
		kernel.NewUUID(),
		weight,
		"clothing",
		mustFee(t, "5.00", "20.00"),
		mustLocation(t, "Miami Receiving Warehouse"),
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("starts Received with one history entry", func(t *testing.T) {
		p := newReceivedParcel(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.Received, p.Status())
		assert.Equal(t, "Miami Receiving Warehouse", p.Location().String())
		assert.False(t, p.AtFinalCheckpoint())
		assert.Nil(t, p.DeliveredAt())

		history := p.UncommittedHistory()
		require.Len(t, history, 1)
		assert.Equal(t, parcel.Received, history[0].Status())
		assert.False(t, history[0].IsOverride())
	})

	t.Run("rejects missing tracking number", func(t *testing.T) {
		weight, err := kernel.WeightFromString("5.0")
		require.NoError(t, err)

		_, err = parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TrackingNumber{},
			kernel.NewUUID(),
			kernel.NewUUID(),
			weight,
			"clothing",
			mustFee(t, "5.00", "20.00"),
			mustLocation(t, "Miami Receiving Warehouse"),
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestParcel_ForwardLifecycle(t *testing.T) {
	t.Run("full lifecycle appends one entry per transition", func(t *testing.T) {
		p := newReceivedParcel(t)
		p.TakeUncommittedHistory() // drop the initial Received entry

		require.NoError(t, p.MarkInTransit("Flight JH-302 to Port-au-Prince", mustLocation(t, "In Transit to Haiti"), time.Now()))
		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))
		require.NoError(t, p.MarkAvailable(time.Now()))

		proof, err := parcel.NewProofOfDelivery("Marie Joseph", "signatures/2026/000042.png")
		require.NoError(t, err)
		require.NoError(t, p.MarkDelivered(proof, time.Now()))

		history := p.TakeUncommittedHistory()
		// Three status transitions plus the arrival location change.
		require.Len(t, history, 4)
		assert.Equal(t, parcel.InTransit, history[0].Status())
		assert.Equal(t, parcel.InTransit, history[1].Status()) // arrival: location change only
		assert.Equal(t, parcel.Available, history[2].Status())
		assert.Equal(t, parcel.Delivered, history[3].Status())
		for _, entry := range history {
			assert.False(t, entry.IsOverride())
		}

		assert.Equal(t, parcel.Delivered, p.Status())
		require.NotNil(t, p.DeliveredAt())
		require.NotNil(t, p.Proof())
		assert.Equal(t, "Marie Joseph", p.Proof().ReceivedBy())
	})

	t.Run("three status transitions append exactly three entries", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))
		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))
		p.TakeUncommittedHistory() // keep only what the remaining transitions add

		before := len(p.UncommittedHistory())
		require.NoError(t, p.MarkAvailable(time.Now()))
		proof, err := parcel.NewProofOfDelivery("Marie Joseph", "signatures/2026/000042.png")
		require.NoError(t, err)
		require.NoError(t, p.MarkDelivered(proof, time.Now()))

		assert.Equal(t, 2, len(p.UncommittedHistory())-before)
	})

	t.Run("delivered timestamp is set only by the final transition", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))
		assert.Nil(t, p.DeliveredAt())

		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))
		require.NoError(t, p.MarkAvailable(time.Now()))
		assert.Nil(t, p.DeliveredAt())

		proof, err := parcel.NewProofOfDelivery("Marie Joseph", "sig.png")
		require.NoError(t, err)
		require.NoError(t, p.MarkDelivered(proof, time.Now()))
		require.NotNil(t, p.DeliveredAt())
	})

	t.Run("available is unreachable before arrival is recorded", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))

		err := p.MarkAvailable(time.Now())

		require.ErrorIs(t, err, parcel.ErrNotAtFinalCheckpoint)
		assert.Equal(t, parcel.InTransit, p.Status())
	})

	t.Run("arrival requires transit", func(t *testing.T) {
		p := newReceivedParcel(t)

		err := p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now())

		require.ErrorIs(t, err, parcel.ErrArrivalRequiresTransit)
	})

	t.Run("delivery requires proof", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))
		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))
		require.NoError(t, p.MarkAvailable(time.Now()))

		err := p.MarkDelivered(parcel.ProofOfDelivery{}, time.Now())

		require.Error(t, err)
		assert.Equal(t, parcel.Available, p.Status())
	})

	t.Run("backward transitions are not possible", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))

		require.Error(t, p.MarkInTransit("", mustLocation(t, "Elsewhere"), time.Now()))
	})

	t.Run("available resets notification counter", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))
		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))

		p.RecordNotification()
		p.RecordNotification()
		require.NoError(t, p.MarkAvailable(time.Now()))

		assert.Equal(t, 0, p.NotificationsSent())
	})
}

func TestParcel_AdministrativeOverride(t *testing.T) {
	staff := kernel.NewUUID()

	t.Run("override appends a flagged entry", func(t *testing.T) {
		p := newReceivedParcel(t)
		p.TakeUncommittedHistory()

		require.NoError(t, p.OverrideStatus(parcel.Available, "scanned at wrong station", staff, time.Now()))

		history := p.UncommittedHistory()
		require.Len(t, history, 1)
		assert.True(t, history[0].IsOverride())
		assert.Equal(t, parcel.Available, p.Status())
	})

	t.Run("override requires a reason", func(t *testing.T) {
		p := newReceivedParcel(t)

		err := p.OverrideStatus(parcel.Available, "", staff, time.Now())

		require.ErrorIs(t, err, parcel.ErrOverrideReasonIsRequired)
	})

	t.Run("override away from Delivered clears the delivery record", func(t *testing.T) {
		p := newReceivedParcel(t)
		require.NoError(t, p.MarkInTransit("", mustLocation(t, "In Transit to Haiti"), time.Now()))
		require.NoError(t, p.RecordArrival(mustLocation(t, "Port-au-Prince Warehouse"), time.Now()))
		require.NoError(t, p.MarkAvailable(time.Now()))
		proof, err := parcel.NewProofOfDelivery("Marie Joseph", "sig.png")
		require.NoError(t, err)
		require.NoError(t, p.MarkDelivered(proof, time.Now()))

		require.NoError(t, p.OverrideStatus(parcel.Available, "delivered to wrong recipient", staff, time.Now()))

		assert.Nil(t, p.DeliveredAt())
		assert.Nil(t, p.Proof())
	})
}

func TestParcel_CorrectWeight(t *testing.T) {
	staff := kernel.NewUUID()

	t.Run("updates weight and fee and logs an override entry", func(t *testing.T) {
		p := newReceivedParcel(t)
		p.TakeUncommittedHistory()

		newWeight, err := kernel.WeightFromString("7.0")
		require.NoError(t, err)
		newFee := mustFee(t, "5.00", "28.00")

		require.NoError(t, p.CorrectWeight(newWeight, newFee, staff, time.Now()))

		assert.Equal(t, "7", p.Weight().String())
		assert.Equal(t, "33.00", p.Fee().Total().String())

		history := p.UncommittedHistory()
		require.Len(t, history, 1)
		assert.True(t, history[0].IsOverride())
	})

	t.Run("rejects unconstructed weight", func(t *testing.T) {
		p := newReceivedParcel(t)

		err := p.CorrectWeight(kernel.Weight{}, mustFee(t, "5.00", "28.00"), staff, time.Now())

		require.Error(t, err)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var p *parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}
