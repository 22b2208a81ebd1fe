package restaurantrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByName retrieves a restaurant by its name.
func (r *GormRestaurantRepository) GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
