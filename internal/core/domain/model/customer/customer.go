// Package customer provides the Customer aggregate. Customers are created
// explicitly or on first reference by an order with an unseen phone number,
// and are never mutated afterwards. The phone number acts as the dedup key.
package customer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is an immutable record of a person ordering deliveries.
type Customer struct {
	id        kernel.UUID
	name      string
	phone     string
	address   string
	createdAt time.Time

	guard kernel.ConstructorGuard
}

// NewCustomer creates a customer record. Name, phone, and address are required.
func NewCustomer(id kernel.UUID, name, phone, address string) (*Customer, error) {
	c := &Customer{
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone, address string, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:        id,
		name:      name,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, the natural dedup key.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's address.
func (c *Customer) Address() string {
	return c.address
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
