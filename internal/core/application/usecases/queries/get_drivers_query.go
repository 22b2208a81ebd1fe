package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves registered drivers, optionally narrowed to the
// ones currently available for assignment.
type GetDriversQuery struct {
	availableOnly bool

	guard kernel.ConstructorGuard
}

// NewGetDriversQuery creates a query for the driver list.
func NewGetDriversQuery(availableOnly bool) GetDriversQuery {
	return GetDriversQuery{
		availableOnly: availableOnly,
		guard:         kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether the result is limited to available drivers.
func (q GetDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

// DriverView is the driver read model.
type DriverView struct {
	ID             kernel.UUID
	Name           string
	Phone          string
	VehicleType    string
	Status         string
	CurrentOrderID *kernel.UUID
	CreatedAt      time.Time
}
