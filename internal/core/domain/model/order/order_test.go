package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(name, quantity, price, "")
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{mustItem(t, "Margherita", 2, 5.00)}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(), "Alice", "+15550001", "12 Oak Street",
		kernel.NewUUID(), "Pizza Place",
		items,
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_computed_total", func(t *testing.T) {
		// Given
		items := []order.Item{
			mustItem(t, "Margherita", 2, 5.00),
			mustItem(t, "Cola", 3, 1.50),
		}

		// When
		o := newTestOrder(t, items...)

		// Then
		assert.Equal(t, order.StatusPending, o.Status())
		assert.InDelta(t, 14.50, o.TotalAmount(), 0.0001)
		assert.Nil(t, o.DriverID())
		assert.Empty(t, o.DriverName())
		assert.Nil(t, o.AssignedAt())
		assert.Nil(t, o.PickedUpAt())
		assert.Nil(t, o.DeliveredAt())
		assert.False(t, o.CreatedAt().IsZero())
		assert.NoError(t, o.Validate())
	})

	t.Run("requires_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(), "Alice", "+15550001", "12 Oak Street",
			kernel.NewUUID(), "Pizza Place",
			nil,
			"",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_customer_and_restaurant_fields", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Margherita", 1, 5.00)}

		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(), "", "", "",
			kernel.NewUUID(), "",
			items,
			"",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewItem("Margherita", 0, 5.00, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := order.NewItem("Margherita", 1, -1.00, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("subtotal_is_quantity_times_price", func(t *testing.T) {
		item := mustItem(t, "Margherita", 2, 5.00)
		assert.InDelta(t, 10.00, item.Subtotal(), 0.0001)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("pending_order_is_assigned", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		at := time.Now()

		// When
		err := o.Assign(driverID, "Bob", at)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.Equal(t, "Bob", o.DriverName())
		require.NotNil(t, o.AssignedAt())
		assert.Equal(t, at.UTC(), *o.AssignedAt())
	})

	t.Run("assigned_order_cannot_be_assigned_again", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Bob", time.Now()))
		firstDriver := *o.DriverID()

		// When
		err := o.Assign(kernel.NewUUID(), "Carol", time.Now())

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectConflict)
		assert.True(t, o.DriverID().IsEqual(firstDriver), "losing assignment must not overwrite the driver")
		assert.Equal(t, "Bob", o.DriverName())
	})

	t.Run("rejects_zero_driver_id", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Assign(kernel.UUID{}, "Bob", time.Now())

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("records_timestamps_for_picked_up_and_delivered", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Bob", time.Now()))

		// When
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp, time.Now()))
		require.NoError(t, o.ChangeStatus(order.StatusInTransit, time.Now()))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, time.Now()))

		// Then
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.NotNil(t, o.PickedUpAt())
		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("accepts_any_defined_target_status", func(t *testing.T) {
		// No transition validation: a pending order may be overwritten
		// straight to delivered.
		o := newTestOrder(t)

		err := o.ChangeStatus(order.StatusDelivered, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("rejects_values_outside_the_enumeration", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Status("done"), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trips_full_state", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Bob", time.Now()))

		// When
		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              o.ID(),
			CustomerID:      o.CustomerID(),
			CustomerName:    o.CustomerName(),
			CustomerPhone:   o.CustomerPhone(),
			DeliveryAddress: o.DeliveryAddress(),
			RestaurantID:    o.RestaurantID(),
			RestaurantName:  o.RestaurantName(),
			Items:           o.Items(),
			TotalAmount:     o.TotalAmount(),
			Status:          o.Status(),
			DriverID:        o.DriverID(),
			DriverName:      o.DriverName(),
			Notes:           o.Notes(),
			CreatedAt:       o.CreatedAt(),
			AssignedAt:      o.AssignedAt(),
		})

		// Then
		require.NoError(t, err)
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, o.TotalAmount(), restored.TotalAmount())
		assert.Equal(t, o.DriverName(), restored.DriverName())
		assert.NoError(t, restored.Validate())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:     kernel.NewUUID(),
			Status: order.Status("done"),
		})

		require.Error(t, err)
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			Status: order.StatusPending,
		})

		require.Error(t, err)
	})
}
