package queries

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the dashboard counters with
// aggregate SQL, one query per table.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle returns the current order and driver counters. Active orders are the
// ones a driver is working on: assigned, picked up, or in transit.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (DashboardStatsView, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsView{}, err
	}

	var view DashboardStatsView

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?)),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
	`,
		string(order.StatusPending),
		string(order.StatusAssigned),
		string(order.StatusPickedUp),
		string(order.StatusInTransit),
		string(order.StatusDelivered),
	).Row()
	if err := row.Scan(&view.TotalOrders, &view.PendingOrders, &view.ActiveOrders, &view.CompletedOrders); err != nil {
		return DashboardStatsView{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM drivers
	`,
		string(driver.StatusAvailable),
		string(driver.StatusBusy),
	).Row()
	if err := row.Scan(&view.TotalDrivers, &view.AvailableDrivers, &view.BusyDrivers); err != nil {
		return DashboardStatsView{}, err
	}

	return view, nil
}
