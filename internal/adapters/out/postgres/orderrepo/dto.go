// Package orderrepo maps order aggregates, including their line items, to the
// relational representation.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order. Line items live in their own
// table and are loaded as a GORM association. The status column is indexed
// for the pending-order pickup and the dashboard counts.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	CustomerID      uuid.UUID `gorm:"type:uuid"`
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string

	RestaurantID   uuid.UUID `gorm:"type:uuid"`
	RestaurantName string

	Items       []OrderItemDTO `gorm:"foreignKey:OrderID"`
	TotalAmount float64

	Status     string     `gorm:"index"`
	DriverID   *uuid.UUID `gorm:"type:uuid"`
	DriverName string

	Notes string

	CreatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database row for one ordered line item.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Quantity int
	Price    float64
	Notes    string
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Notes:    item.Notes(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		RestaurantName:  aggregate.RestaurantName(),
		Items:           itemDTOs,
		TotalAmount:     aggregate.TotalAmount(),
		Status:          string(aggregate.Status()),
		DriverID:        driverID,
		DriverName:      aggregate.DriverName(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		AssignedAt:      aggregate.AssignedAt(),
		PickedUpAt:      aggregate.PickedUpAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

// lifecycleColumns lists the mutable part of an order row. A column map is
// used instead of a struct update so that NULLing a timestamp or the driver
// reference is persisted rather than skipped as a zero value.
func lifecycleColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":       dto.Status,
		"driver_id":    dto.DriverID,
		"driver_name":  dto.DriverName,
		"assigned_at":  dto.AssignedAt,
		"picked_up_at": dto.PickedUpAt,
		"delivered_at": dto.DeliveredAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		restored, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &restored
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		CustomerID:      customerID,
		CustomerName:    dto.CustomerName,
		CustomerPhone:   dto.CustomerPhone,
		DeliveryAddress: dto.DeliveryAddress,
		RestaurantID:    restaurantID,
		RestaurantName:  dto.RestaurantName,
		Items:           items,
		TotalAmount:     dto.TotalAmount,
		Status:          order.Status(dto.Status),
		DriverID:        driverID,
		DriverName:      dto.DriverName,
		Notes:           dto.Notes,
		CreatedAt:       dto.CreatedAt,
		AssignedAt:      dto.AssignedAt,
		PickedUpAt:      dto.PickedUpAt,
		DeliveredAt:     dto.DeliveredAt,
	})
}
