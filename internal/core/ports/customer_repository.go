package ports

import (
	"context"

	"dispatch/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer records.
// Customers are immutable after creation, so there is no update operation.
type CustomerRepository interface {
	// Add persists a new customer record.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByPhone retrieves a customer by phone number, the natural dedup key
	// of the order-intake flow. Returns ObjectNotFoundError when unseen.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
