package usecase

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lluanbs/celestial-resort/internal/model"
)

func TestConfirm_NotFound(t *testing.T) {
	reservations := &mockReservationStore{
		getByIDFn: func(ctx context.Context, id string) (model.Reservation, error) {
			return model.Reservation{}, sql.ErrNoRows
		},
	}

	uc := NewConfirmReservation(reservations)
	v, err := uc.Run(context.Background(), "missing")

	assert.NoError(t, err)
	assert.False(t, v.Success)
	assert.Equal(t, http.StatusBadRequest, v.Status)
	assert.Equal(t, "Reservation not found!", v.Message)
}

func TestConfirm_PendingBecomesActive(t *testing.T) {
	res := activeReservation()
	res.Status = model.StatusPending

	var updatedID string
	var updatedStatus model.ReservationStatus
	reservations := &mockReservationStore{
		getByIDFn: func(ctx context.Context, id string) (model.Reservation, error) { return res, nil },
		updateStatusFn: func(ctx context.Context, id string, status model.ReservationStatus) error {
			updatedID = id
			updatedStatus = status
			return nil
		},
	}

	uc := NewConfirmReservation(reservations)
	v, err := uc.Run(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.True(t, v.Success)
	assert.Equal(t, "Reservation confirmed successfully!", v.Message)
	assert.Equal(t, "res-1", updatedID)
	assert.Equal(t, model.StatusActive, updatedStatus)
}

// A reservation that already left PENDING must never be moved back to
// ACTIVE: terminal states and CHECKED_IN are refused without a write.
func TestConfirm_RefusesNonPendingStates(t *testing.T) {
	cases := []struct {
		name    string
		status  model.ReservationStatus
		message string
	}{
		{name: "completed", status: model.StatusCompleted, message: "Reservation already used!"},
		{name: "checked in", status: model.StatusCheckedIn, message: "Reservation already checked in!"},
		{name: "checked out", status: model.StatusCheckedOut, message: "Reservation already checked out!"},
		{name: "rejected", status: model.StatusRejected, message: "Reservation rejected!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := activeReservation()
			res.Status = tc.status
			reservations := &mockReservationStore{
				getByIDFn: func(ctx context.Context, id string) (model.Reservation, error) { return res, nil },
				updateStatusFn: func(ctx context.Context, id string, status model.ReservationStatus) error {
					t.Fatalf("%s reservation must not be rewritten to %s", tc.status, status)
					return nil
				},
			}

			uc := NewConfirmReservation(reservations)
			v, err := uc.Run(context.Background(), "res-1")

			assert.NoError(t, err)
			assert.False(t, v.Success)
			assert.Equal(t, http.StatusBadRequest, v.Status)
			assert.Equal(t, tc.message, v.Message)
		})
	}
}

// Confirming an already ACTIVE reservation succeeds without any write.
func TestConfirm_ActiveIsIdempotent(t *testing.T) {
	reservations := &mockReservationStore{
		getByIDFn: func(ctx context.Context, id string) (model.Reservation, error) {
			return activeReservation(), nil
		},
		updateStatusFn: func(ctx context.Context, id string, status model.ReservationStatus) error {
			t.Fatal("an already-active reservation must not be rewritten")
			return nil
		},
	}

	uc := NewConfirmReservation(reservations)
	for range 2 {
		v, err := uc.Run(context.Background(), "res-1")
		assert.NoError(t, err)
		assert.True(t, v.Success)
		assert.Equal(t, http.StatusOK, v.Status)
		assert.Equal(t, "Reservation already confirmed!", v.Message)
	}
}
