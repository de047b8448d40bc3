package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lluanbs/celestial-resort/internal/utils"
)

// Reservation records a stay booked by a user for one or more rooms.
// The total price is captured at creation time from the rooms' prices and
// never recomputed afterwards. UserName is denormalized so confirmation
// documents can be rendered without a user lookup.
//
// Fields:
//  ID         – v4 UUID primary key (reservations.id).
//  UserID     – owning user (reservations.user_id).
//  UserName   – display name of the owner at creation time.
//  Rooms      – IDs of the reserved rooms, in request order.
//  CheckIn    – check-in timestamp, UTC.
//  CheckOut   – check-out timestamp, UTC.
//  TotalCents – sum of the reserved rooms' prices in cents.
//  Status     – lifecycle state, see ReservationStatus.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Reservation struct {
	ID         string
	UserID     string
	UserName   string
	Rooms      []string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
	Status     ReservationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var (
	ErrReservationUser  = errors.New("reservation user is required")
	ErrReservationRooms = errors.New("reservation needs at least one room")
	ErrReservationDates = errors.New("invalid reservation dates")
)

// NewReservation builds a PENDING reservation with a fresh UUID. The
// check-in and check-out dates arrive in the client locale format
// (DD/MM/YYYY HH:MM:SS) and are normalized to UTC here.
func NewReservation(userID, userName string, rooms []string, checkIn, checkOut string, totalCents int64) (*Reservation, error) {
	if userID == "" {
		return nil, ErrReservationUser
	}
	if len(rooms) == 0 {
		return nil, ErrReservationRooms
	}
	in, err := utils.ParseLocaleDateTime(checkIn)
	if err != nil {
		return nil, ErrReservationDates
	}
	out, err := utils.ParseLocaleDateTime(checkOut)
	if err != nil {
		return nil, ErrReservationDates
	}
	return &Reservation{
		ID:         uuid.NewString(),
		UserID:     userID,
		UserName:   userName,
		Rooms:      rooms,
		CheckIn:    in,
		CheckOut:   out,
		TotalCents: totalCents,
		Status:     StatusPending,
	}, nil
}
