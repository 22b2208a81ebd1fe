// Package restaurant provides the Restaurant aggregate. Restaurants are
// created explicitly or on first reference by an order with an unseen name.
// The name is a deliberately weak dedup key: two distinct restaurants sharing
// a name collapse into one record.
package restaurant

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Placeholder values used when a restaurant is auto-created from an order
// that only names it.
const (
	DefaultAddress     = "Address not provided"
	DefaultPhone       = "Phone not provided"
	DefaultCuisineType = "General"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant is an immutable record of a restaurant orders are placed with.
type Restaurant struct {
	id          kernel.UUID
	name        string
	address     string
	phone       string
	cuisineType string
	createdAt   time.Time

	guard kernel.ConstructorGuard
}

// NewRestaurant creates a restaurant record. All fields are required; callers
// auto-creating from an order use the Default placeholder values.
func NewRestaurant(id kernel.UUID, name, address, phone, cuisineType string) (*Restaurant, error) {
	r := &Restaurant{
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
		r.setPhone(phone),
		r.setCuisineType(cuisineType),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name, address, phone, cuisineType string, createdAt time.Time) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:          id,
		name:        name,
		address:     address,
		phone:       phone,
		cuisineType: cuisineType,
		createdAt:   createdAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name, the weak dedup key.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant's phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// CuisineType returns the cuisine classification.
func (r *Restaurant) CuisineType() string {
	return r.cuisineType
}

// CreatedAt returns the creation timestamp.
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}

func (r *Restaurant) setCuisineType(cuisineType string) error {
	if cuisineType == "" {
		return errs.NewValueIsRequiredError("cuisine type")
	}
	r.cuisineType = cuisineType
	return nil
}
