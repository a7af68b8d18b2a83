package parcel_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(), "PT-ABCDEF1234", kernel.NewUUID(),
		"Jane Receiver", "0171000000", "42 Main Street", 3.0, 150)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("should create a valid parcel in booked status", func(t *testing.T) {
		id := kernel.NewUUID()
		senderID := kernel.NewUUID()

		p, err := parcel.NewParcel(id, "PT-ABCDEF1234", senderID,
			"Jane Receiver", "0171000000", "42 Main Street", 3.0, 150)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "PT-ABCDEF1234", p.TrackingCode())
		assert.True(t, p.SenderID().IsEqual(senderID))
		assert.Equal(t, parcel.Booked, p.Status())
		assert.InDelta(t, 3.0, p.WeightKg(), 1e-9)
		assert.InDelta(t, 150.0, p.Charge(), 1e-9)
		assert.False(t, p.BookedAt().IsZero())
	})

	t.Run("should reject blank tracking code", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), "  ", kernel.NewUUID(),
			"Jane", "0171", "42 Main St", 1, 50)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank receiver fields", func(t *testing.T) {
		testCases := []struct {
			name, phone, address string
		}{
			{"", "0171", "42 Main St"},
			{"Jane", "   ", "42 Main St"},
			{"Jane", "0171", ""},
		}

		for _, tc := range testCases {
			_, err := parcel.NewParcel(kernel.NewUUID(), "PT-X", kernel.NewUUID(),
				tc.name, tc.phone, tc.address, 1, 50)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -1, -0.001} {
			_, err := parcel.NewParcel(kernel.NewUUID(), "PT-X", kernel.NewUUID(),
				"Jane", "0171", "42 Main St", weight, 0)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject invalid sender id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), "PT-X", kernel.UUID{},
			"Jane", "0171", "42 Main St", 1, 50)

		require.Error(t, err)
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should restore status and booking timestamp", func(t *testing.T) {
		id := kernel.NewUUID()
		bookedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		p, err := parcel.RestoreParcel(id, "PT-ABCDEF1234", kernel.NewUUID(),
			"Jane", "0171", "42 Main St", 2, 100, parcel.InTransit, bookedAt)

		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, p.Status())
		assert.Equal(t, bookedAt, p.BookedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(kernel.NewUUID(), "PT-X", kernel.NewUUID(),
			"Jane", "0171", "42 Main St", 2, 100, parcel.Unknown, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_UpdateDetails(t *testing.T) {
	t.Run("should replace receiver details and recomputed charge", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.UpdateDetails("New Receiver", "0181", "7 Other Road", 5, 250)

		require.NoError(t, err)
		assert.Equal(t, "New Receiver", p.ReceiverName())
		assert.Equal(t, "0181", p.ReceiverPhone())
		assert.Equal(t, "7 Other Road", p.ReceiverAddress())
		assert.InDelta(t, 5.0, p.WeightKg(), 1e-9)
		assert.InDelta(t, 250.0, p.Charge(), 1e-9)
	})

	t.Run("should not change the status", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.OutForDelivery))

		require.NoError(t, p.UpdateDetails("New Receiver", "0181", "7 Other Road", 5, 250))

		assert.Equal(t, parcel.OutForDelivery, p.Status())
	})

	t.Run("should reject invalid input and keep previous values", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.UpdateDetails("", "0181", "7 Other Road", 5, 250)

		require.Error(t, err)
		assert.Equal(t, "Jane Receiver", p.ReceiverName())
	})

	t.Run("zero value parcel is rejected", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t,
			p.UpdateDetails("Jane", "0171", "42 Main St", 1, 50),
			parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("should accept any valid status regardless of current state", func(t *testing.T) {
		p := newTestParcel(t)

		// forward
		require.NoError(t, p.ChangeStatus(parcel.OutForDelivery))
		assert.Equal(t, parcel.OutForDelivery, p.Status())

		// backward corrections are allowed as well
		require.NoError(t, p.ChangeStatus(parcel.Packed))
		assert.Equal(t, parcel.Packed, p.Status())

		require.NoError(t, p.ChangeStatus(parcel.Delivered))
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.ChangeStatus(parcel.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.Booked, p.Status())
	})
}

func TestNewHistoryEntry(t *testing.T) {
	t.Run("should create a valid history entry", func(t *testing.T) {
		id := kernel.NewUUID()
		parcelID := kernel.NewUUID()

		e, err := parcel.NewHistoryEntry(id, parcelID, parcel.Booked)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.True(t, e.ParcelID().IsEqual(parcelID))
		assert.Equal(t, parcel.Booked, e.Status())
		assert.False(t, e.RecordedAt().IsZero())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := parcel.NewHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), parcel.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid parcel id", func(t *testing.T) {
		_, err := parcel.NewHistoryEntry(kernel.NewUUID(), kernel.UUID{}, parcel.Booked)

		require.Error(t, err)
	})
}

func TestRestoreHistoryEntry(t *testing.T) {
	t.Run("should restore the recorded timestamp", func(t *testing.T) {
		recordedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		e, err := parcel.RestoreHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), parcel.Delivered, recordedAt)

		require.NoError(t, err)
		assert.Equal(t, recordedAt, e.RecordedAt())
		assert.Equal(t, parcel.Delivered, e.Status())
	})
}
