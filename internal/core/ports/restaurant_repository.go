package ports

import (
	"context"

	"dispatch/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// records. Restaurants are immutable after creation.
type RestaurantRepository interface {
	// Add persists a new restaurant record.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// GetByName retrieves a restaurant by name, the deliberately weak dedup
	// key of the order-intake flow. Returns ObjectNotFoundError when unseen.
	GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error)
}
