package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a restaurant
// explicitly, as opposed to the auto-creation that happens during order intake.
type CreateRestaurantCommand struct {
	restaurantID kernel.UUID
	name         string
	address      string
	phone        string
	cuisineType  string

	guard kernel.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant with a
// generated id.
func NewCreateRestaurantCommand(name, address, phone, cuisineType string) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(kernel.NewUUID()),
		command.setName(name),
		command.setAddress(address),
		command.setPhone(phone),
		command.setCuisineType(cuisineType),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the generated restaurant id.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant name from the command.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant address from the command.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant phone from the command.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// CuisineType returns the cuisine classification from the command.
func (c CreateRestaurantCommand) CuisineType() string {
	return c.cuisineType
}

func (c *CreateRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateRestaurantCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateRestaurantCommand) setCuisineType(cuisineType string) error {
	if cuisineType == "" {
		return errs.NewValueIsRequiredError("cuisine type")
	}
	c.cuisineType = cuisineType
	return nil
}
