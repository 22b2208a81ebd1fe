package ports

import (
	"context"
	"time"
)

// OrderEvent describes a lifecycle change of an order, emitted after the
// change has been committed.
type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher emits order lifecycle events to interested consumers
// (notifications, tracking). Publishing is best effort: implementations may
// fail without affecting the committed state, and callers must not treat a
// publish failure as an operation failure.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
