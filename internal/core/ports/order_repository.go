// Package ports defines the contracts between the application core and
// infrastructure: repositories over the entity store, the unit of work for
// transactional boundaries, and the order event publisher.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable lifecycle state of an existing order
	// (status, driver reference, transition timestamps). Items and the
	// total are immutable after Add and are not rewritten.
	// Returns ObjectNotFoundError when no row matches the id.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists the aggregate's lifecycle state only if the
	// currently stored status still equals expected.
	// When the guard matches zero rows (order missing or already moved on),
	// it returns ObjectConflictError without distinguishing the two causes.
	// This compare-and-set is what keeps concurrent assignments to a single
	// winner.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still waiting for a
	// driver. Used by the automatic dispatch flow.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)
}
