// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into confirmation documents.
package queue

// ReservationCreatedEvent is published after a reservation is persisted.
// It carries everything the document worker needs to render the
// confirmation PDF without querying the primary database. Dates are in
// the client locale format (DD/MM/YYYY HH:MM:SS) and the total is
// pre-formatted in the configured currency.
type ReservationCreatedEvent struct {
	ReservationID  string   `json:"reservation_id"`
	UserID         string   `json:"user_id"`
	UserName       string   `json:"user_name"`
	RoomNumbers    []string `json:"room_numbers"`
	CheckInDate    string   `json:"check_in_date"`
	CheckOutDate   string   `json:"check_out_date"`
	TotalCents     int64    `json:"total_cents"`
	TotalFormatted string   `json:"total_formatted"`
	CreatedAt      string   `json:"created_at"`
}
