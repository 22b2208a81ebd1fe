package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// Request bodies.

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CreateDriverRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
}

type UpdateDriverStatusRequest struct {
	Status string `json:"status"`
}

type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	CuisineType string `json:"cuisine_type"`
}

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryAddress string             `json:"delivery_address"`
	RestaurantName  string             `json:"restaurant_name"`
	Items           []OrderItemRequest `json:"items"`
	Notes           string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies. Field names match the wire format the dashboard frontend
// consumes.

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type DriverResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	VehicleType    string     `json:"vehicle_type"`
	Status         string     `json:"status"`
	CurrentOrderID *uuid.UUID `json:"current_order_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RestaurantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	CuisineType string    `json:"cuisine_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerID      uuid.UUID           `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	DeliveryAddress string              `json:"delivery_address"`
	RestaurantID    uuid.UUID           `json:"restaurant_id"`
	RestaurantName  string              `json:"restaurant_name"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	DriverID        *uuid.UUID          `json:"driver_id"`
	DriverName      string              `json:"driver_name"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	AssignedAt      *time.Time          `json:"assigned_at"`
	PickedUpAt      *time.Time          `json:"picked_up_at"`
	DeliveredAt     *time.Time          `json:"delivered_at"`
}

type OrderStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type DriverStatsResponse struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Busy      int64 `json:"busy"`
}

type DashboardStatsResponse struct {
	Orders  OrderStatsResponse  `json:"orders"`
	Drivers DriverStatsResponse `json:"drivers"`
}

// Mappers from aggregates, used by the create endpoints that return the
// entity they just persisted.

func customerResponseFromAggregate(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
	}
}

func driverResponseFromAggregate(d *driver.Driver) DriverResponse {
	resp := DriverResponse{
		ID:          d.ID().Bytes(),
		Name:        d.Name(),
		Phone:       d.Phone(),
		VehicleType: d.VehicleType(),
		Status:      string(d.Status()),
		CreatedAt:   d.CreatedAt(),
	}
	if orderID := d.CurrentOrderID(); orderID != nil {
		raw := orderID.Bytes()
		resp.CurrentOrderID = &raw
	}
	return resp
}

func restaurantResponseFromAggregate(r *restaurant.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		Address:     r.Address(),
		Phone:       r.Phone(),
		CuisineType: r.CuisineType(),
		CreatedAt:   r.CreatedAt(),
	}
}

func orderResponseFromAggregate(o *order.Order) OrderResponse {
	items := o.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Notes:    item.Notes(),
		})
	}

	resp := OrderResponse{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		CustomerName:    o.CustomerName(),
		CustomerPhone:   o.CustomerPhone(),
		DeliveryAddress: o.DeliveryAddress(),
		RestaurantID:    o.RestaurantID().Bytes(),
		RestaurantName:  o.RestaurantName(),
		Items:           itemResponses,
		TotalAmount:     o.TotalAmount(),
		Status:          string(o.Status()),
		DriverName:      o.DriverName(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		AssignedAt:      o.AssignedAt(),
		PickedUpAt:      o.PickedUpAt(),
		DeliveredAt:     o.DeliveredAt(),
	}
	if driverID := o.DriverID(); driverID != nil {
		raw := driverID.Bytes()
		resp.DriverID = &raw
	}
	return resp
}

// Mappers from read models, used by the list and single-entity queries.

func customerResponseFromView(v queries.CustomerView) CustomerResponse {
	return CustomerResponse{
		ID:        v.ID.Bytes(),
		Name:      v.Name,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
	}
}

func driverResponseFromView(v queries.DriverView) DriverResponse {
	resp := DriverResponse{
		ID:          v.ID.Bytes(),
		Name:        v.Name,
		Phone:       v.Phone,
		VehicleType: v.VehicleType,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
	if v.CurrentOrderID != nil {
		raw := v.CurrentOrderID.Bytes()
		resp.CurrentOrderID = &raw
	}
	return resp
}

func restaurantResponseFromView(v queries.RestaurantView) RestaurantResponse {
	return RestaurantResponse{
		ID:          v.ID.Bytes(),
		Name:        v.Name,
		Address:     v.Address,
		Phone:       v.Phone,
		CuisineType: v.CuisineType,
		CreatedAt:   v.CreatedAt,
	}
}

func orderResponseFromView(v queries.OrderView) OrderResponse {
	itemResponses := make([]OrderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		itemResponses = append(itemResponses, OrderItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Notes:    item.Notes,
		})
	}

	resp := OrderResponse{
		ID:              v.ID.Bytes(),
		CustomerID:      v.CustomerID.Bytes(),
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		DeliveryAddress: v.DeliveryAddress,
		RestaurantID:    v.RestaurantID.Bytes(),
		RestaurantName:  v.RestaurantName,
		Items:           itemResponses,
		TotalAmount:     v.TotalAmount,
		Status:          v.Status,
		DriverName:      v.DriverName,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		AssignedAt:      v.AssignedAt,
		PickedUpAt:      v.PickedUpAt,
		DeliveredAt:     v.DeliveredAt,
	}
	if v.DriverID != nil {
		raw := v.DriverID.Bytes()
		resp.DriverID = &raw
	}
	return resp
}

func dashboardStatsResponseFromView(v queries.DashboardStatsView) DashboardStatsResponse {
	return DashboardStatsResponse{
		Orders: OrderStatsResponse{
			Total:     v.TotalOrders,
			Pending:   v.PendingOrders,
			Active:    v.ActiveOrders,
			Completed: v.CompletedOrders,
		},
		Drivers: DriverStatsResponse{
			Total:     v.TotalDrivers,
			Available: v.AvailableDrivers,
			Busy:      v.BusyDrivers,
		},
	}
}
