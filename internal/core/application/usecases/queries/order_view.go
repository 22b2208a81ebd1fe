package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the order read model shared by the single-order and order-list
// queries.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	RestaurantID    kernel.UUID
	RestaurantName  string
	Items           []ItemView
	TotalAmount     float64
	Status          string
	DriverID        *kernel.UUID
	DriverName      string
	Notes           string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}

// ItemView is one ordered line item in the read model.
type ItemView struct {
	Name     string
	Quantity int
	Price    float64
	Notes    string
}

const orderSelectColumns = `
	id,
	customer_id,
	customer_name,
	customer_phone,
	delivery_address,
	restaurant_id,
	restaurant_name,
	total_amount,
	status,
	driver_id,
	driver_name,
	notes,
	created_at,
	assigned_at,
	picked_up_at,
	delivered_at
`

// scanOrderRows consumes order rows into views, leaving Items empty for
// loadOrderItems to fill.
func scanOrderRows(rows *gorm.DB) ([]OrderView, error) {
	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	orders := make([]OrderView, 0)
	for sqlRows.Next() {
		var view OrderView
		var id, customerID, restaurantID uuid.UUID
		var driverID uuid.NullUUID

		err = sqlRows.Scan(
			&id,
			&customerID,
			&view.CustomerName,
			&view.CustomerPhone,
			&view.DeliveryAddress,
			&restaurantID,
			&view.RestaurantName,
			&view.TotalAmount,
			&view.Status,
			&driverID,
			&view.DriverName,
			&view.Notes,
			&view.CreatedAt,
			&view.AssignedAt,
			&view.PickedUpAt,
			&view.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			assignee, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.DriverID = &assignee
		}

		view.Items = make([]ItemView, 0)
		orders = append(orders, view)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadOrderItems fetches the line items for the given orders in one query and
// attaches them to the matching views.
func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, view := range orders {
		id := view.ID.Bytes()
		index[id] = i
		ids = append(ids, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			quantity,
			price,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item ItemView

		if err = rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price, &item.Notes); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
