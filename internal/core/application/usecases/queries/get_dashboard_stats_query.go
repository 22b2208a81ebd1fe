package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the operational counters shown on the
// dispatch dashboard.
type GetDashboardStatsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard counters query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsView carries the dashboard counters. The counts reflect the
// instant each aggregate query ran; a concurrent status change can land
// between them, which the dashboard tolerates.
type DashboardStatsView struct {
	TotalOrders      int64
	PendingOrders    int64
	ActiveOrders     int64
	CompletedOrders  int64
	TotalDrivers     int64
	AvailableDrivers int64
	BusyDrivers      int64
}
