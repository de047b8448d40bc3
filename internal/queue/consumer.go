package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lluanbs/celestial-resort/internal/document"
)

// StartReservationConsumer connects to RabbitMQ, declares the durable
// reservation.created queue and consumes it, rendering a confirmation
// PDF into downloadDir for each message. It runs a reconnect loop with
// capped backoff and never returns under normal operation; malformed or
// unrenderable messages are rejected without requeue so the worker does
// not spin on a poison message.
func StartReservationConsumer(url, downloadDir string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("reservation-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, downloadDir); err != nil {
			log.Printf("reservation-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, downloadDir string) error {
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Printf("reservation-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(reservationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(reservationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, downloadDir); err != nil {
			log.Printf("reservation-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, downloadDir string) error {
	var ev ReservationCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	conf := document.Confirmation{
		ReservationID: ev.ReservationID,
		UserName:      ev.UserName,
		CheckInDate:   ev.CheckInDate,
		CheckOutDate:  ev.CheckOutDate,
		RoomNumbers:   ev.RoomNumbers,
		Total:         ev.TotalFormatted,
	}
	if err := document.RenderConfirmation(downloadDir, conf); err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}
	log.Printf("reservation-consumer: confirmation rendered | reservation_id=%s | user_id=%s", ev.ReservationID, ev.UserID)
	return nil
}
