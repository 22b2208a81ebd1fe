package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents a request to overwrite a driver's
// availability status. The order reference, if any, is left untouched.
type ChangeDriverStatusCommand struct {
	driverID kernel.UUID
	status   driver.Status

	guard kernel.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to change a driver's status.
func NewChangeDriverStatusCommand(driverID kernel.UUID, status driver.Status) (ChangeDriverStatusCommand, error) {
	if err := driverID.Validate(); err != nil {
		return ChangeDriverStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return ChangeDriverStatusCommand{
		driverID: driverID,
		status:   status,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the target driver id.
func (c ChangeDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the requested status.
func (c ChangeDriverStatusCommand) Status() driver.Status {
	return c.status
}
