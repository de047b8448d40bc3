package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Room represents a bookable room as stored in the `rooms` table.
// Rooms are created once and immutable afterwards.
//
// Fields:
//  ID         – v4 UUID primary key (rooms.id).
//  RoomNumber – unique human-facing room number (e.g. "101").
//  PriceCents – nightly price in cents, always positive.
//  CreatedAt  – timestamp of creation.
type Room struct {
	ID         string
	RoomNumber string
	PriceCents int64
	CreatedAt  time.Time
}

var (
	ErrRoomNumber = errors.New("room number is required")
	ErrRoomPrice  = errors.New("room price must be positive")
)

// NewRoom builds a room with a fresh UUID, validating the number and price.
func NewRoom(roomNumber string, priceCents int64) (*Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrRoomNumber
	}
	if priceCents <= 0 {
		return nil, ErrRoomPrice
	}
	return &Room{
		ID:         uuid.NewString(),
		RoomNumber: roomNumber,
		PriceCents: priceCents,
	}, nil
}
