package parcel_test

import (
	"fmt"
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.Unknown))
		assert.Equal(t, 1, int(parcel.Booked))
		assert.Equal(t, 2, int(parcel.Packed))
		assert.Equal(t, 3, int(parcel.InTransit))
		assert.Equal(t, 4, int(parcel.OutForDelivery))
		assert.Equal(t, 5, int(parcel.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []parcel.Status{
			parcel.Booked,
			parcel.Packed,
			parcel.InTransit,
			parcel.OutForDelivery,
			parcel.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := parcel.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := parcel.Status(42).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   parcel.Status
		expected string
	}{
		{parcel.Unknown, "unknown"},
		{parcel.Booked, "booked"},
		{parcel.Packed, "packed"},
		{parcel.InTransit, "in_transit"},
		{parcel.OutForDelivery, "out_for_delivery"},
		{parcel.Delivered, "delivered"},
		{parcel.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %d is %q", int(tc.status), tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		testCases := map[string]parcel.Status{
			"booked":           parcel.Booked,
			"packed":           parcel.Packed,
			"in_transit":       parcel.InTransit,
			"out_for_delivery": parcel.OutForDelivery,
			"delivered":        parcel.Delivered,
		}

		for input, expected := range testCases {
			status, err := parcel.StatusFromString(input)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject invalid status names", func(t *testing.T) {
		inputs := []string{"", "in transit", "out for delivery", "BOOKED", "shipped", "unknown"}

		for _, input := range inputs {
			status, err := parcel.StatusFromString(input)

			require.Error(t, err, "expected error for input: %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, parcel.Unknown, status)
		}
	})
}
