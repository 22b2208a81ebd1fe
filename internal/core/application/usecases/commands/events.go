package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// publishOrderEvent emits a lifecycle event for an already-committed order
// change. Best effort: a publish failure is logged and swallowed so it never
// undoes or fails the committed operation.
func publishOrderEvent(ctx context.Context, publisher ports.OrderEventPublisher, aggregate *order.Order) {
	event := ports.OrderEvent{
		OrderID:    aggregate.ID().String(),
		Status:     string(aggregate.Status()),
		OccurredAt: time.Now().UTC(),
	}
	if driverID := aggregate.DriverID(); driverID != nil {
		event.DriverID = driverID.String()
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order event",
			"order_id", event.OrderID,
			"status", event.Status,
			"error", err)
	}
}
