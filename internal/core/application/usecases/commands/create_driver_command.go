package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a driver. New drivers
// start in the available status.
type CreateDriverCommand struct {
	driverID    kernel.UUID
	name        string
	phone       string
	vehicleType string

	guard kernel.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver with a
// generated id.
func NewCreateDriverCommand(name, phone, vehicleType string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleType(vehicleType),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver id.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver phone from the command.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle type from the command.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	c.vehicleType = vehicleType
	return nil
}
