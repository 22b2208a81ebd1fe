package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Bob", "+15550002", "bike")
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("starts_available_with_no_order", func(t *testing.T) {
		// When
		d := newTestDriver(t)

		// Then
		assert.Equal(t, driver.StatusAvailable, d.Status())
		assert.Nil(t, d.CurrentOrderID())
		assert.False(t, d.CreatedAt().IsZero())
		assert.NoError(t, d.Validate())
	})

	t.Run("requires_name_phone_and_vehicle", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})
}

func TestDriver_MarkBusy(t *testing.T) {
	t.Run("sets_busy_and_couples_the_order", func(t *testing.T) {
		// Given
		d := newTestDriver(t)
		orderID := kernel.NewUUID()

		// When
		err := d.MarkBusy(orderID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, driver.StatusBusy, d.Status())
		require.NotNil(t, d.CurrentOrderID())
		assert.True(t, d.CurrentOrderID().IsEqual(orderID))
	})

	t.Run("rejects_zero_order_id", func(t *testing.T) {
		d := newTestDriver(t)

		err := d.MarkBusy(kernel.UUID{})

		require.Error(t, err)
		assert.Equal(t, driver.StatusAvailable, d.Status())
	})
}

func TestDriver_Release(t *testing.T) {
	t.Run("returns_to_available_and_clears_the_order", func(t *testing.T) {
		// Given
		d := newTestDriver(t)
		require.NoError(t, d.MarkBusy(kernel.NewUUID()))

		// When
		d.Release()

		// Then
		assert.Equal(t, driver.StatusAvailable, d.Status())
		assert.Nil(t, d.CurrentOrderID())
	})
}

func TestDriver_ChangeStatus(t *testing.T) {
	t.Run("overwrites_status_directly", func(t *testing.T) {
		d := newTestDriver(t)

		require.NoError(t, d.ChangeStatus(driver.StatusOffline))

		assert.Equal(t, driver.StatusOffline, d.Status())
	})

	t.Run("rejects_values_outside_the_enumeration", func(t *testing.T) {
		d := newTestDriver(t)

		err := d.ChangeStatus(driver.Status("sleeping"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, driver.StatusAvailable, d.Status())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("accepts_all_wire_values", func(t *testing.T) {
		for _, s := range []string{"available", "busy", "offline"} {
			status, err := driver.ParseStatus(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		_, err := driver.ParseStatus("idle")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("round_trips_full_state", func(t *testing.T) {
		// Given
		d := newTestDriver(t)
		require.NoError(t, d.MarkBusy(kernel.NewUUID()))

		// When
		restored, err := driver.RestoreDriver(
			d.ID(), d.Name(), d.Phone(), d.VehicleType(),
			d.Status(), d.CurrentOrderID(), d.CreatedAt(),
		)

		// Then
		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(d.ID()))
		assert.Equal(t, driver.StatusBusy, restored.Status())
		require.NotNil(t, restored.CurrentOrderID())
		assert.True(t, restored.CurrentOrderID().IsEqual(*d.CurrentOrderID()))
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), "Bob", "+15550002", "bike",
			driver.Status("idle"), nil, newTestDriver(t).CreatedAt(),
		)

		require.Error(t, err)
	})
}
