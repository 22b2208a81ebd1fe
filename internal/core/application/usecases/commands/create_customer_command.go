package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer record.
type CreateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	phone      string
	address    string

	guard kernel.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer. The
// customer id is generated here so callers can reference it before handling.
func NewCreateCustomerCommand(name, phone, address string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the generated customer id.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name from the command.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer phone from the command.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer address from the command.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
