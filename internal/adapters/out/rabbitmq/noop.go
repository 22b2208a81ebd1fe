package rabbitmq

import (
	"context"

	"dispatch/internal/core/ports"
)

// NoopPublisher discards order events. Used when no broker is configured.
type NoopPublisher struct{}

// PublishOrderEvent does nothing.
func (NoopPublisher) PublishOrderEvent(context.Context, ports.OrderEvent) error {
	return nil
}
