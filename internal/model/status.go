package model

import "fmt"

// ReservationStatus is the lifecycle state of a reservation.
//
// A reservation is created PENDING, becomes ACTIVE once payment is
// verified, and moves to CHECKED_IN and CHECKED_OUT as the guest
// arrives and leaves. REJECTED and COMPLETED are terminal states set
// by back-office review.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "PENDING"
	StatusActive     ReservationStatus = "ACTIVE"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusRejected   ReservationStatus = "REJECTED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
)

// ParseReservationStatus validates a raw status value read from
// storage or a request body.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	switch s := ReservationStatus(raw); s {
	case StatusPending, StatusActive, StatusCompleted, StatusRejected, StatusCheckedIn, StatusCheckedOut:
		return s, nil
	}
	return "", fmt.Errorf("unknown reservation status %q", raw)
}

// IsTerminal reports whether no further transitions apply.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCheckedOut:
		return true
	}
	return false
}

// OccupyingStatuses lists the statuses that keep a room unavailable
// for new reservations. CHECKED_OUT still occupies: past stays block
// their rooms until the reservation is completed by the back office.
func OccupyingStatuses() []string {
	return []string{
		string(StatusActive),
		string(StatusPending),
		string(StatusCheckedIn),
		string(StatusCheckedOut),
	}
}
