package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler reads the restaurant list straight from the store.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant list queries.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle returns all restaurants ordered by creation time.
func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			cuisine_type,
			created_at
		FROM restaurants
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view RestaurantView
		var id uuid.UUID

		err = rows.Scan(&id, &view.Name, &view.Address, &view.Phone, &view.CuisineType, &view.CreatedAt)
		if err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
