package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents a driver's availability. The constant values are the wire
// and storage representation.
type Status string

const (
	// StatusAvailable means the driver can take a new order.
	StatusAvailable Status = "available"

	// StatusBusy means the driver is carrying an order; currentOrderID points
	// at it.
	StatusBusy Status = "busy"

	// StatusOffline means the driver is not working.
	StatusOffline Status = "offline"
)

// ParseStatus converts a wire value into a Status.
// Returns a ValueIsInvalidError for anything outside the enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status value is one of the defined enumeration values.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
