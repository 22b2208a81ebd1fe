// Package restaurantrepo maps restaurant aggregates to their relational
// representation.
package restaurantrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the database row for a restaurant record. The name column
// is indexed because the order-intake flow deduplicates restaurants by name.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Address     string
	Phone       string
	CuisineType string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		CuisineType: aggregate.CuisineType(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, dto.Phone, dto.CuisineType, dto.CreatedAt)
}
