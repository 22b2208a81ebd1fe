// Package queries contains the read side of the dispatch system. Handlers
// bypass the aggregates and read the store directly with raw SQL, returning
// flat read models.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves every registered customer.
type GetCustomersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetCustomersQuery creates a query for the full customer list.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CustomerView is the customer read model.
type CustomerView struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}
