// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. Publishing happens after the database commit and is best effort:
// a broker failure is logged, not propagated.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange order events are published to.
const ExchangeName = "orders.events"

// Client wraps an AMQP connection and a single publishing channel. Publishes
// are serialized because an amqp channel is not safe for concurrent use.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// Dial connects to the broker at the given URL and declares the order events
// exchange.
func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Close releases the channel and the connection.
func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// PublishOrderEvent publishes the event as a persistent JSON message with the
// routing key "order.status.<status>".
func (c *Client) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ch.PublishWithContext(
		ctx,
		ExchangeName,
		fmt.Sprintf("order.status.%s", event.Status),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}
