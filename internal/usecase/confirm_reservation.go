package usecase

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/model"
)

// ConfirmReservation marks a reservation ACTIVE after its payment proof
// has been accepted. Confirming an already ACTIVE reservation is
// idempotent: it short-circuits with success and issues no write.
// Terminal and checked-in reservations are refused rather than moved
// back to ACTIVE. The payment receipt itself is validated by the
// transport layer before this use case runs.
type ConfirmReservation struct {
	reservations ReservationStore
}

func NewConfirmReservation(reservations ReservationStore) *ConfirmReservation {
	return &ConfirmReservation{reservations: reservations}
}

func (uc *ConfirmReservation) Run(ctx context.Context, reservationID string) (Verdict, error) {
	res, err := uc.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusBadRequest, "Reservation not found!"), nil
		}
		return Verdict{}, err
	}
	// Only PENDING may move to ACTIVE. Terminal states and CHECKED_IN are
	// refused; an already ACTIVE reservation short-circuits with success.
	switch res.Status {
	case model.StatusActive:
		return success("Reservation already confirmed!", nil), nil
	case model.StatusCompleted:
		return failure(http.StatusBadRequest, "Reservation already used!"), nil
	case model.StatusCheckedIn:
		return failure(http.StatusBadRequest, "Reservation already checked in!"), nil
	case model.StatusCheckedOut:
		return failure(http.StatusBadRequest, "Reservation already checked out!"), nil
	case model.StatusRejected:
		return failure(http.StatusBadRequest, "Reservation rejected!"), nil
	}
	if err := uc.reservations.UpdateStatus(ctx, reservationID, model.StatusActive); err != nil {
		return Verdict{}, err
	}
	return success("Reservation confirmed successfully!", nil), nil
}
