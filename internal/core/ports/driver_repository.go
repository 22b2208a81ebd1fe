package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver's availability state.
	// Returns ObjectNotFoundError when no row matches the id.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetFirstAvailable retrieves the longest-registered driver currently in
	// the available status. Used by the automatic dispatch flow.
	GetFirstAvailable(ctx context.Context) (*driver.Driver, error)
}
