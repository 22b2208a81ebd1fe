package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
)

// Item is a value object describing one ordered line: a dish name, the
// quantity, the unit price, and an optional note for the kitchen.
type Item struct {
	name     string
	quantity int
	price    float64
	notes    string
}

// NewItem creates a validated line item. Name must be non-empty, quantity
// positive, price non-negative.
func NewItem(name string, quantity int, price float64, notes string) (Item, error) {
	var item Item

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	item.notes = notes
	return item, nil
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Notes returns the optional line note, empty when absent.
func (i Item) Notes() string {
	return i.notes
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.price
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("item quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("item price")
	}
	i.price = price
	return nil
}
