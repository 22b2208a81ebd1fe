package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a delivery order. It carries the customer
// and restaurant references (ids plus denormalized display fields), the
// ordered items with the total computed once at creation, and the lifecycle
// state with its transition timestamps.
//
// Invariants:
//   - totalAmount is the sum of quantity times price over items, immutable
//     after construction
//   - a driver reference is only introduced by Assign, which requires the
//     pending status; the matching persisted write is conditional on it
//   - timestamps are recorded when the corresponding status is reached
type Order struct {
	id kernel.UUID

	customerID      kernel.UUID
	customerName    string
	customerPhone   string
	deliveryAddress string

	restaurantID   kernel.UUID
	restaurantName string

	items       []Item
	totalAmount float64

	status     Status
	driverID   *kernel.UUID
	driverName string

	notes string

	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates a new pending order. The total amount is computed from the
// items once; it does not change afterwards. The creation timestamp is taken
// from the clock in UTC.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	restaurantID kernel.UUID,
	restaurantName string,
	items []Item,
	notes string,
) (*Order, error) {
	o := &Order{
		status:    StatusPending,
		notes:     notes,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName, customerPhone, deliveryAddress),
		o.setRestaurant(restaurantID, restaurantName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction from storage.
type RestoreOrderParams struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	RestaurantID    kernel.UUID
	RestaurantName  string
	Items           []Item
	TotalAmount     float64
	Status          Status
	DriverID        *kernel.UUID
	DriverName      string
	Notes           string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}

// RestoreOrder reconstructs an order from persistence. Identity and status are
// validated; lifecycle consistency is trusted to storage, since the permissive
// status update can legitimately produce states a constructor would reject.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              p.ID,
		customerID:      p.CustomerID,
		customerName:    p.CustomerName,
		customerPhone:   p.CustomerPhone,
		deliveryAddress: p.DeliveryAddress,
		restaurantID:    p.RestaurantID,
		restaurantName:  p.RestaurantName,
		items:           p.Items,
		totalAmount:     p.TotalAmount,
		status:          p.Status,
		driverID:        p.DriverID,
		driverName:      p.DriverName,
		notes:           p.Notes,
		createdAt:       p.CreatedAt,
		assignedAt:      p.AssignedAt,
		pickedUpAt:      p.PickedUpAt,
		deliveredAt:     p.DeliveredAt,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the denormalized customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the denormalized customer phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// RestaurantID returns the id of the restaurant the order is placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// RestaurantName returns the denormalized restaurant display name.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total computed at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the assigned driver's id, nil when unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// DriverName returns the assigned driver's display name, empty when unassigned.
func (o *Order) DriverName() string {
	return o.driverName
}

// Notes returns the optional order note, empty when absent.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns the assignment timestamp, nil until assigned.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// PickedUpAt returns the pickup timestamp, nil until picked up.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Assign records a driver on the order and moves it to the assigned status.
// Only a pending order can be assigned; anything else is a conflict. The
// persisted write must repeat this check as a conditional update so that
// concurrent assignments cannot both succeed.
func (o *Order) Assign(driverID kernel.UUID, driverName string, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status != StatusPending {
		return errs.NewObjectConflictErrorWithCause("order", o.id.String(),
			fmt.Errorf("%s is not a valid status to assign", o.status))
	}

	o.status = StatusAssigned
	o.driverID = &driverID
	o.driverName = driverName
	at = at.UTC()
	o.assignedAt = &at
	return nil
}

// ChangeStatus overwrites the lifecycle status with any defined enumeration
// value and records the matching timestamp for picked_up and delivered.
// Transition legality is deliberately not checked. Whether the delivered
// status must also release the assigned driver is decided by the caller,
// which can see both entities.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	at = at.UTC()

	switch next {
	case StatusPickedUp:
		o.pickedUpAt = &at
	case StatusDelivered:
		o.deliveredAt = &at
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID, name, phone, address string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	o.customerID = id
	o.customerName = name
	o.customerPhone = phone
	o.deliveryAddress = address
	return nil
}

func (o *Order) setRestaurant(id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}

	o.restaurantID = id
	o.restaurantName = name
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)

	total := 0.0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	o.totalAmount = total
	return nil
}
