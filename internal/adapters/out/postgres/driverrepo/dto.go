// Package driverrepo maps driver aggregates to their relational
// representation.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a driver. The status column is indexed
// for the available-drivers listing and the dashboard counts.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Phone          string
	VehicleType    string
	Status         string     `gorm:"index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		VehicleType:    aggregate.VehicleType(),
		Status:         string(aggregate.Status()),
		CurrentOrderID: currentOrderID,
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleType,
		driver.Status(dto.Status),
		currentOrderID,
		dto.CreatedAt,
	)
}
