package request_test

import (
	"testing"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T) *request.Request {
	t.Helper()
	req, err := request.NewRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"1Z999AA10123456784",
		"Two pairs of shoes and a phone",
		nil,
		"",
		"call before delivery",
		"Marie Joseph",
		"+509 3456 7890",
		time.Now(),
	)
	require.NoError(t, err)
	return req
}

func TestNewRequest(t *testing.T) {
	t.Run("should create pending request", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.Validate())
		assert.Equal(t, request.Pending, req.Status())
		assert.False(t, req.Review().IsWeightConfirmed())
		assert.False(t, req.Review().IsCategoryConfirmed())
		assert.False(t, req.CanApprove())
	})

	t.Run("should accept positive estimated weight", func(t *testing.T) {
		estimate := decimal.NewFromFloat(2.5)
		req, err := request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), "REF-1", "books", &estimate,
			"books", "", "Jean Pierre", "", time.Now(),
		)

		require.NoError(t, err)
		require.NotNil(t, req.EstimatedWeight())
		assert.True(t, req.EstimatedWeight().Equal(estimate))
	})

	t.Run("should reject non-positive estimated weight", func(t *testing.T) {
		estimate := decimal.Zero
		_, err := request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), "REF-1", "books", &estimate,
			"", "", "Jean Pierre", "", time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		_, err := request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), "", "books", nil,
			"", "", "Jean Pierre", "", time.Now(),
		)
		require.Error(t, err)

		_, err = request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), "REF-1", "", nil,
			"", "", "Jean Pierre", "", time.Now(),
		)
		require.Error(t, err)

		_, err = request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), "REF-1", "books", nil,
			"", "", "", "", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestRequest_ValidationGate(t *testing.T) {
	reviewer := kernel.NewUUID()

	t.Run("approval requires both confirmations", func(t *testing.T) {
		req := newPendingRequest(t)

		err := req.Approve()
		require.ErrorIs(t, err, request.ErrWeightIsNotConfirmed)
		assert.Equal(t, request.Pending, req.Status())

		require.NoError(t, req.SetWeight(decimal.NewFromFloat(3.0), reviewer))
		require.NoError(t, req.ConfirmWeight(reviewer))

		err = req.Approve()
		require.ErrorIs(t, err, request.ErrCategoryIsNotConfirmed)
		assert.Equal(t, request.Pending, req.Status())

		require.NoError(t, req.SetCategory("clothing", reviewer))
		require.NoError(t, req.ConfirmCategory(reviewer))

		assert.True(t, req.CanApprove())
		require.NoError(t, req.Approve())
		assert.Equal(t, request.Approved, req.Status())
	})

	t.Run("editing weight after confirmation clears only the weight flag", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.SetWeight(decimal.NewFromFloat(3.0), reviewer))
		require.NoError(t, req.ConfirmWeight(reviewer))
		require.NoError(t, req.SetCategory("clothing", reviewer))
		require.NoError(t, req.ConfirmCategory(reviewer))
		require.True(t, req.CanApprove())

		// Weight changed without re-confirming.
		require.NoError(t, req.SetWeight(decimal.NewFromFloat(4.0), reviewer))

		assert.False(t, req.Review().IsWeightConfirmed())
		assert.True(t, req.Review().IsCategoryConfirmed())
		assert.False(t, req.CanApprove())
		require.ErrorIs(t, req.Approve(), request.ErrWeightIsNotConfirmed)
	})

	t.Run("editing category after confirmation clears only the category flag", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.SetWeight(decimal.NewFromFloat(3.0), reviewer))
		require.NoError(t, req.ConfirmWeight(reviewer))
		require.NoError(t, req.SetCategory("clothing", reviewer))
		require.NoError(t, req.ConfirmCategory(reviewer))

		require.NoError(t, req.SetCategory("electronics", reviewer))

		assert.True(t, req.Review().IsWeightConfirmed())
		assert.False(t, req.Review().IsCategoryConfirmed())
	})

	t.Run("zero weight cannot be confirmed", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.SetWeight(decimal.Zero, reviewer))
		require.ErrorIs(t, req.ConfirmWeight(reviewer), request.ErrWeightIsNotPositive)
		assert.False(t, req.Review().IsWeightConfirmed())
	})

	t.Run("zero weight with confirmed category cannot be approved", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.SetWeight(decimal.Zero, reviewer))
		require.NoError(t, req.SetCategory("clothing", reviewer))
		require.NoError(t, req.ConfirmCategory(reviewer))

		assert.False(t, req.CanApprove())
		require.Error(t, req.Approve())
		assert.Equal(t, request.Pending, req.Status())
	})

	t.Run("negative weight is rejected at set time", func(t *testing.T) {
		req := newPendingRequest(t)

		require.Error(t, req.SetWeight(decimal.NewFromFloat(-1), reviewer))
	})

	t.Run("category cannot be confirmed before it is set", func(t *testing.T) {
		req := newPendingRequest(t)

		require.ErrorIs(t, req.ConfirmCategory(reviewer), request.ErrCategoryIsNotSet)
	})
}

func TestRequest_Resolution(t *testing.T) {
	reviewer := kernel.NewUUID()

	t.Run("reject is always permitted while pending", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.Reject())
		assert.Equal(t, request.Rejected, req.Status())
	})

	t.Run("resolved request is immutable", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Reject())

		require.ErrorIs(t, req.SetWeight(decimal.NewFromFloat(3.0), reviewer), request.ErrRequestIsResolved)
		require.ErrorIs(t, req.ConfirmWeight(reviewer), request.ErrRequestIsResolved)
		require.ErrorIs(t, req.SetCategory("clothing", reviewer), request.ErrRequestIsResolved)
		require.ErrorIs(t, req.Approve(), request.ErrRequestIsResolved)
		require.ErrorIs(t, req.Reject(), request.ErrRequestIsResolved)
	})

	t.Run("confirmed weight is available after the gate passes", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.SetWeight(decimal.NewFromFloat(3.5), reviewer))
		require.NoError(t, req.ConfirmWeight(reviewer))
		require.NoError(t, req.SetCategory("clothing", reviewer))
		require.NoError(t, req.ConfirmCategory(reviewer))

		weight, err := req.ConfirmedWeight()

		require.NoError(t, err)
		assert.Equal(t, "3.5", weight.String())
		assert.Equal(t, "clothing", req.ConfirmedCategory())
	})
}

func TestRequest_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var req request.Request

		require.ErrorIs(t, req.Validate(), request.ErrRequestIsNotConstructed)
	})
}
