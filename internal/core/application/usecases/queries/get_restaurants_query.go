package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves every known restaurant, explicit and
// auto-created alike.
type GetRestaurantsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for the restaurant list.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantView is the restaurant read model.
type RestaurantView struct {
	ID          kernel.UUID
	Name        string
	Address     string
	Phone       string
	CuisineType string
	CreatedAt   time.Time
}
