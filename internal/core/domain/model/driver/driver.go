// Package driver provides the Driver aggregate for the dispatch system.
// A driver registers with a vehicle, toggles availability, and is coupled to
// at most one order at a time through currentOrderID while busy.
package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver is the aggregate root for a delivery driver.
//
// Invariant: currentOrderID is set if and only if the driver is busy, and the
// referenced order's driver id points back at this driver. The coupling is
// maintained by the assignment and delivery-release flows, which change both
// entities inside one transaction.
type Driver struct {
	id             kernel.UUID
	name           string
	phone          string
	vehicleType    string
	status         Status
	currentOrderID *kernel.UUID
	createdAt      time.Time

	guard kernel.ConstructorGuard
}

// NewDriver registers a new driver. Drivers start available with no order.
func NewDriver(id kernel.UUID, name, phone, vehicleType string) (*Driver, error) {
	d := &Driver{
		status:    StatusAvailable,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	status Status,
	currentOrderID *kernel.UUID,
	createdAt time.Time,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:             id,
		name:           name,
		phone:          phone,
		vehicleType:    vehicleType,
		status:         status,
		currentOrderID: currentOrderID,
		createdAt:      createdAt,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleType returns the registered vehicle type.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// CurrentOrderID returns the order the driver is carrying, nil when idle.
func (d *Driver) CurrentOrderID() *kernel.UUID {
	return d.currentOrderID
}

// CreatedAt returns the registration timestamp.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// MarkBusy couples the driver to an order and sets the busy status.
// Called by the assignment flow after the order's conditional write succeeded.
func (d *Driver) MarkBusy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	d.status = StatusBusy
	d.currentOrderID = &orderID
	return nil
}

// Release returns the driver to the available status and clears the order
// reference. Called when the carried order reaches the delivered status.
func (d *Driver) Release() {
	d.status = StatusAvailable
	d.currentOrderID = nil
}

// ChangeStatus overwrites the availability status directly. Serves the
// explicit driver-status endpoint; the order reference is left untouched.
func (d *Driver) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	d.status = next
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	d.vehicleType = vehicleType
	return nil
}
