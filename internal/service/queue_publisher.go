// Package service provides the best-effort publisher for reservation
// lifecycle events. Errors are logged and returned so callers can fall back
// to writing the notification synchronously without interrupting the main
// request flow.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matchday/matchday/internal/queue"
)

// Publisher sends reservation events to the broker. An empty URL disables
// publishing: Publish then returns an error immediately and the caller's
// synchronous fallback takes over.
type Publisher struct {
	URL string
	Log *slog.Logger
}

// Publish marshals the event and sends it to the durable reservation.events
// queue. The connection is dialed per publish, matching the low event rate;
// messages are marked persistent so they survive broker restarts.
func (p Publisher) Publish(ctx context.Context, ev queue.ReservationEvent) error {
	if p.URL == "" {
		return amqp.ErrClosed
	}
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.Warn("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue.ReservationQueueName, true, false, false, false, nil); err != nil {
		p.Log.Warn("rabbitmq: queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.Log.Warn("rabbitmq: marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.ReservationQueueName, false, false, pub); err != nil {
		p.Log.Warn("rabbitmq: publish failed", "err", err)
		return err
	}
	return nil
}
