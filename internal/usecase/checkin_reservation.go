package usecase

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/repository"
)

// CheckInReservation handles guest arrival. Only an ACTIVE reservation
// can be checked in; every other status is refused with its own message,
// terminal states first. On success the reservation price is debited
// from the user's balance and the status moves to CHECKED_IN in a single
// transaction (ReservationStore.CheckIn).
type CheckInReservation struct {
	reservations ReservationStore
	users        UserStore
}

func NewCheckInReservation(reservations ReservationStore, users UserStore) *CheckInReservation {
	return &CheckInReservation{reservations: reservations, users: users}
}

func (uc *CheckInReservation) Run(ctx context.Context, reservationID string) (Verdict, error) {
	res, err := uc.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusBadRequest, "Reservation not found!"), nil
		}
		return Verdict{}, err
	}

	switch res.Status {
	case model.StatusCompleted:
		return failure(http.StatusBadRequest, "Reservation already used!"), nil
	case model.StatusCheckedIn:
		return failure(http.StatusBadRequest, "Reservation already checked in!"), nil
	case model.StatusCheckedOut:
		return failure(http.StatusBadRequest, "Reservation already checked out!"), nil
	case model.StatusRejected:
		return failure(http.StatusBadRequest, "Reservation rejected!"), nil
	}
	if res.Status != model.StatusActive {
		return failure(http.StatusPaymentRequired, "The payment for the reservation is pending or was not successful!"), nil
	}

	user, err := uc.users.GetByID(ctx, res.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusBadRequest, "User not found!"), nil
		}
		return Verdict{}, err
	}
	if res.TotalCents > user.BalanceCents {
		return failure(http.StatusBadRequest, "User don't have enough cash balance!"), nil
	}

	if err := uc.reservations.CheckIn(ctx, res.ID, res.UserID, res.TotalCents); err != nil {
		// The debit re-checks the balance at write time; a concurrent
		// spend between the read above and the write lands here.
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return failure(http.StatusBadRequest, "User don't have enough cash balance!"), nil
		}
		return Verdict{}, err
	}
	return success("Check-in confirmed successfully", nil), nil
}
