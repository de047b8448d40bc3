package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reservationQueueName = "reservation.created"

// Publisher publishes domain events to RabbitMQ. A connection is dialed
// per publish so a broker restart never leaves the API holding a dead
// channel; reservation creation is low-volume enough for this to be fine.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher targeting the given AMQP URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishReservationCreated publishes a ReservationCreatedEvent to the
// reservation.created queue. Errors are logged and returned so callers
// can ignore failures without interrupting the request flow; the
// reservation itself is already committed when this runs. Messages are
// marked persistent.
func (p *Publisher) PublishReservationCreated(ctx context.Context, event ReservationCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts; declare is idempotent.
	if _, err := ch.QueueDeclare(reservationQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", reservationQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
