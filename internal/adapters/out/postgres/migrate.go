package postgres

import (
	"dispatch/internal/adapters/out/postgres/customerrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entity store collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&restaurantrepo.RestaurantDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
