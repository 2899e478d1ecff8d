package parcel_test

import (
	"testing"

	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should format prefix, year, and zero-padded sequence", func(t *testing.T) {
		n, err := parcel.NewTrackingNumber(2026, 123)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, "PFH-2026-000123", n.String())
	})

	t.Run("sequence grows beyond six digits without truncation", func(t *testing.T) {
		n, err := parcel.NewTrackingNumber(2026, 1234567)

		require.NoError(t, err)
		assert.Equal(t, "PFH-2026-1234567", n.String())
	})

	t.Run("should reject year out of range", func(t *testing.T) {
		_, err := parcel.NewTrackingNumber(1999, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject non-positive sequence", func(t *testing.T) {
		_, err := parcel.NewTrackingNumber(2026, 0)
		require.Error(t, err)

		_, err = parcel.NewTrackingNumber(2026, -5)
		require.Error(t, err)
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("should parse formatted tracking number", func(t *testing.T) {
		n, err := parcel.TrackingNumberFromString("PFH-2026-000123")

		require.NoError(t, err)
		assert.Equal(t, "PFH-2026-000123", n.String())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"PFH-26-000123",
			"XYZ-2026-000123",
			"PFH-2026-123",
			"PFH-2026-00012a",
		} {
			_, err := parcel.TrackingNumberFromString(raw)
			require.Error(t, err, "input %q", raw)
		}
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n parcel.TrackingNumber

		require.Error(t, n.Validate())
	})
}
