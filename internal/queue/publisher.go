package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publish opens a connection, declares the queue (idempotent) and publishes
// one message, then tears everything down. No confirm is awaited and nothing
// is retried: a dial or publish error is fatal to this single send, which is
// all the at-most-once contract asks for.
func Publish(ctx context.Context, url string, msg Message) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(Name, false, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now().UTC(),
		Body:        body,
	}
	if err := ch.PublishWithContext(ctx,
		"",    // default exchange
		Name,  // routing key = queue name
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
