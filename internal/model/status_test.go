package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReservationStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "ACTIVE", "COMPLETED", "REJECTED", "CHECKED_IN", "CHECKED_OUT"} {
		s, err := ParseReservationStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, ReservationStatus(raw), s)
	}

	_, err := ParseReservationStatus("pending")
	assert.Error(t, err)
	_, err = ParseReservationStatus("CANCELLED")
	assert.Error(t, err)
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   ReservationStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusActive, false},
		{StatusCheckedIn, false},
		{StatusCheckedOut, true},
		{StatusCompleted, true},
		{StatusRejected, true},
	}
	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
		})
	}
}

func TestOccupyingStatuses(t *testing.T) {
	got := OccupyingStatuses()
	assert.ElementsMatch(t, []string{"ACTIVE", "PENDING", "CHECKED_IN", "CHECKED_OUT"}, got)
	assert.NotContains(t, got, "COMPLETED")
	assert.NotContains(t, got, "REJECTED")
}
