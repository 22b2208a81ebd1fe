package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally narrowed to one lifecycle
// status.
type GetOrdersQuery struct {
	status string

	guard kernel.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query. An empty status means no
// filter; a non-empty one must be a defined lifecycle status.
func NewGetOrdersQuery(status string) (GetOrdersQuery, error) {
	if status != "" {
		if _, err := order.ParseStatus(status); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty when absent.
func (q GetOrdersQuery) Status() string {
	return q.status
}
