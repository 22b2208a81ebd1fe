package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The constant values are
// the wire and storage representation.
//
// Lifecycle:
//
//	pending ──> assigned ──> picked_up ──> in_transit ──> delivered
//
// cancelled is a defined member of the enumeration with no dedicated
// transition operation or side effects; the permissive status update may
// still write it.
type Status string

const (
	// StatusPending is the initial status of a newly placed order,
	// waiting to be assigned to a driver.
	StatusPending Status = "pending"

	// StatusAssigned indicates a driver has been assigned to the order.
	StatusAssigned Status = "assigned"

	// StatusPickedUp indicates the driver has collected the order
	// from the restaurant.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit indicates the order is on its way to the customer.
	StatusInTransit Status = "in_transit"

	// StatusDelivered indicates the order reached the customer. Reaching this
	// status releases the assigned driver.
	StatusDelivered Status = "delivered"

	// StatusCancelled is defined but has no transition logic of its own.
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusAssigned:  {},
		StatusPickedUp:  {},
		StatusInTransit: {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// ParseStatus converts a wire value into a Status.
// Returns a ValueIsInvalidError for anything outside the enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status value is one of the defined enumeration
// values. Used to reject statuses arriving from external sources.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the order is in flight with a driver:
// assigned, picked_up, or in_transit.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusPickedUp || s == StatusInTransit
}
