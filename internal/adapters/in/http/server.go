// Package http exposes the dispatch operations over a JSON REST surface.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateCustomer    commands.CreateCustomerCommandHandler
	CreateDriver      commands.CreateDriverCommandHandler
	ChangeDriverState commands.ChangeDriverStatusCommandHandler
	CreateRestaurant  commands.CreateRestaurantCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler

	GetCustomers      queries.GetCustomersQueryHandler
	GetDrivers        queries.GetDriversQueryHandler
	GetRestaurants    queries.GetRestaurantsQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api plus a bare /health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.PATCH("/drivers/:driver_id/status", s.UpdateDriverStatus)

	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants", s.GetRestaurants)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.PATCH("/orders/:order_id/assign/:driver_id", s.AssignDriver)
	api.PATCH("/orders/:order_id/status", s.UpdateOrderStatus)

	api.GET("/dashboard/stats", s.GetDashboardStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "ok"})
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Phone, req.Address)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, customerResponseFromAggregate(created))
}

// GetCustomers handles GET /api/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	views, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return internalError(ctx)
	}

	response := make([]CustomerResponse, 0, len(views))
	for _, view := range views {
		response = append(response, customerResponseFromView(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, req.Phone, req.VehicleType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, driverResponseFromAggregate(created))
}

// GetDrivers handles GET /api/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	return s.listDrivers(ctx, false)
}

// GetAvailableDrivers handles GET /api/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	return s.listDrivers(ctx, true)
}

func (s *Server) listDrivers(ctx echo.Context, availableOnly bool) error {
	views, err := s.handlers.GetDrivers.Handle(ctx.Request().Context(), queries.NewGetDriversQuery(availableOnly))
	if err != nil {
		return internalError(ctx)
	}

	response := make([]DriverResponse, 0, len(views))
	for _, view := range views {
		response = append(response, driverResponseFromView(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateDriverStatus handles PATCH /api/drivers/:driver_id/status.
func (s *Server) UpdateDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	var req UpdateDriverStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := driver.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.handlers.ChangeDriverState.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Driver not found")
		}
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Driver status updated"})
}

// CreateRestaurant handles POST /api/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(req.Name, req.Address, req.Phone, req.CuisineType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, restaurantResponseFromAggregate(created))
}

// GetRestaurants handles GET /api/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	views, err := s.handlers.GetRestaurants.Handle(ctx.Request().Context(), queries.NewGetRestaurantsQuery())
	if err != nil {
		return internalError(ctx)
	}

	response := make([]RestaurantResponse, 0, len(views))
	for _, view := range views {
		response = append(response, restaurantResponseFromView(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemParams{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Notes:    item.Notes,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.CustomerName,
		req.CustomerPhone,
		req.DeliveryAddress,
		req.RestaurantName,
		items,
		req.Notes,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(placed))
}

// GetOrders handles GET /api/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, orderResponseFromView(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:order_id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// AssignDriver handles PATCH /api/orders/:order_id/assign/:driver_id.
// A missing driver is 404; a missing or already-assigned order is 409, the
// two causes deliberately indistinguishable.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	driverID, err := kernel.UUIDFromString(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectConflict):
			return conflict(ctx, "Order not found or already assigned")
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Driver not found")
		default:
			return internalError(ctx)
		}
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order assigned successfully"})
}

// UpdateOrderStatus handles PATCH /api/orders/:order_id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order status updated"})
}

// GetDashboardStats handles GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	view, err := s.handlers.GetDashboardStats.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, dashboardStatsResponseFromView(view))
}

func badRequest(ctx echo.Context, detail string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

func notFound(ctx echo.Context, detail string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: detail})
}

func conflict(ctx echo.Context, detail string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{Detail: detail})
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
}
