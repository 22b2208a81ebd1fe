package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// ItemParams carries one requested line item into the order intake flow.
type ItemParams struct {
	Name     string
	Quantity int
	Price    float64
	Notes    string
}

// PlaceOrderCommand represents a request to place a new delivery order. The
// customer and the restaurant are referenced by their natural keys (phone and
// name) and are created on first sight during handling.
type PlaceOrderCommand struct {
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	deliveryAddress string
	restaurantName  string
	items           []order.Item
	notes           string

	guard kernel.ConstructorGuard
}

// NewPlaceOrderCommand creates an order intake command with a generated order
// id. Line items are validated here so handling starts from well-formed input.
func NewPlaceOrderCommand(
	customerName string,
	customerPhone string,
	deliveryAddress string,
	restaurantName string,
	items []ItemParams,
	notes string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		notes: notes,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomer(customerName, customerPhone, deliveryAddress),
		command.setRestaurantName(restaurantName),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated order id.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer name from the command.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer phone from the command.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the delivery destination from the command.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// RestaurantName returns the restaurant name from the command.
func (c PlaceOrderCommand) RestaurantName() string {
	return c.restaurantName
}

// Items returns the validated line items.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Notes returns the optional order note.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomer(name, phone, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.customerName = name
	c.customerPhone = phone
	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	c.restaurantName = name
	return nil
}

func (c *PlaceOrderCommand) setItems(params []ItemParams) error {
	if len(params) == 0 {
		return order.ErrItemsAreRequired
	}

	items := make([]order.Item, 0, len(params))
	for _, p := range params {
		item, err := order.NewItem(p.Name, p.Quantity, p.Price, p.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
