package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	res, err := NewReservation("u1", "Ana", []string{"r1", "r2"}, "10/03/2026 14:00:00", "12/03/2026 11:00:00", 5000)
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "Ana", res.UserName)
	assert.Equal(t, []string{"r1", "r2"}, res.Rooms)
	assert.Equal(t, StatusPending, res.Status)
	assert.Equal(t, int64(5000), res.TotalCents)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), res.CheckIn)
	assert.Equal(t, time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC), res.CheckOut)
}

func TestNewReservation_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		rooms    []string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{name: "missing user", userID: "", rooms: []string{"r1"}, checkIn: "10/03/2026 14:00:00", checkOut: "12/03/2026 11:00:00", wantErr: ErrReservationUser},
		{name: "no rooms", userID: "u1", rooms: nil, checkIn: "10/03/2026 14:00:00", checkOut: "12/03/2026 11:00:00", wantErr: ErrReservationRooms},
		{name: "bad check-in", userID: "u1", rooms: []string{"r1"}, checkIn: "2026-03-10 14:00:00", checkOut: "12/03/2026 11:00:00", wantErr: ErrReservationDates},
		{name: "bad check-out", userID: "u1", rooms: []string{"r1"}, checkIn: "10/03/2026 14:00:00", checkOut: "next tuesday", wantErr: ErrReservationDates},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReservation(tc.userID, "Ana", tc.rooms, tc.checkIn, tc.checkOut, 5000)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewRoom_Validation(t *testing.T) {
	room, err := NewRoom(" 101 ", 25000)
	require.NoError(t, err)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, int64(25000), room.PriceCents)

	_, err = NewRoom("", 25000)
	assert.ErrorIs(t, err, ErrRoomNumber)

	_, err = NewRoom("101", 0)
	assert.ErrorIs(t, err, ErrRoomPrice)
}

func TestNewUser_NormalizesEmail(t *testing.T) {
	u, err := NewUser("Ana", " Ana@Example.COM ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Zero(t, u.BalanceCents)

	_, err = NewUser("", "ana@example.com", "hash")
	assert.ErrorIs(t, err, ErrUserName)

	_, err = NewUser("Ana", "  ", "hash")
	assert.ErrorIs(t, err, ErrUserEmail)
}
