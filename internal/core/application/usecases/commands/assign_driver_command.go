package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign a specific driver to a
// specific pending order.
type AssignDriverCommand struct {
	orderID  kernel.UUID
	driverID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the target order id.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
