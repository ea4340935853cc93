package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consume connects to the broker and processes messages from the queue with
// automatic acknowledgment: a message counts as handled the instant it is
// delivered, so a crash mid-processing loses it. That is the relay's
// at-most-once contract, not a defect. The reconnect loop keeps the consumer
// alive across broker restarts; Consume only returns on an unrecoverable
// setup error, which in practice means never.
func Consume(url string, handle func(Message)) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			slog.Warn("consumer: dial broker failed", "err", err, "retry_in", backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, handle); err != nil {
			slog.Warn("consumer: loop ended, reconnecting", "err", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, handle func(Message)) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(Name, false, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// autoAck: the broker forgets the message on delivery.
	msgs, err := ch.Consume(Name, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	slog.Info("consumer: waiting for messages", "queue", Name)
	for d := range msgs {
		var msg Message
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			slog.Warn("consumer: dropping undecodable message", "err", err)
			continue
		}
		handle(msg)
	}
	return errors.New("deliveries channel closed")
}
