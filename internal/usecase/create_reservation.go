package usecase

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/queue"
	"github.com/lluanbs/celestial-resort/internal/utils"
)

// CreateReservationInput carries the command to book rooms. Dates arrive
// in the client locale format (DD/MM/YYYY HH:MM:SS).
type CreateReservationInput struct {
	UserID       string   `json:"user_id"`
	UserName     string   `json:"user_name"`
	Rooms        []string `json:"rooms"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
}

// CreateReservation books rooms for a user. Guards run strictly in
// order: user exists, all room ids exist, none occupied, price and room
// numbers resolvable. Only then is the reservation persisted as PENDING
// with the captured total price. The confirmation document is requested
// through a post-commit event; a publish failure never rolls back the
// reservation.
type CreateReservation struct {
	reservations ReservationStore
	users        UserStore
	rooms        RoomStore
	events       EventPublisher
}

func NewCreateReservation(reservations ReservationStore, users UserStore, rooms RoomStore, events EventPublisher) *CreateReservation {
	return &CreateReservation{reservations: reservations, users: users, rooms: rooms, events: events}
}

func (uc *CreateReservation) Run(ctx context.Context, in CreateReservationInput) (Verdict, error) {
	exists, err := uc.users.Exists(ctx, in.UserID)
	if err != nil {
		return Verdict{}, err
	}
	if !exists {
		return failure(http.StatusBadRequest, "User not exists!"), nil
	}

	idsOK, err := uc.rooms.IDsExist(ctx, in.Rooms)
	if err != nil {
		return Verdict{}, err
	}
	if !idsOK {
		return failure(http.StatusBadRequest, "Invalid rooms IDs!"), nil
	}

	occupied, err := uc.reservations.IsAnyRoomOccupied(ctx, in.Rooms)
	if err != nil {
		return Verdict{}, err
	}
	if occupied {
		return failure(http.StatusBadRequest, "Rooms not available!"), nil
	}

	totalCents, err := uc.rooms.SumPricesByIDs(ctx, in.Rooms)
	if err != nil {
		return Verdict{}, err
	}
	if totalCents <= 0 {
		return failure(http.StatusBadRequest, "Rooms prices not available!"), nil
	}

	roomNumbers, err := uc.rooms.NumbersByIDs(ctx, in.Rooms)
	if err != nil {
		return Verdict{}, err
	}
	if len(roomNumbers) == 0 {
		return failure(http.StatusBadRequest, "Rooms numbers not available!"), nil
	}

	res, err := model.NewReservation(in.UserID, in.UserName, in.Rooms, in.CheckInDate, in.CheckOutDate, totalCents)
	if err != nil {
		return failure(http.StatusBadRequest, "Invalid reservation dates!"), nil
	}
	if err := uc.reservations.Create(ctx, res); err != nil {
		return Verdict{}, err
	}

	event := queue.ReservationCreatedEvent{
		ReservationID:  res.ID,
		UserID:         res.UserID,
		UserName:       res.UserName,
		RoomNumbers:    roomNumbers,
		CheckInDate:    utils.FormatLocaleDateTime(res.CheckIn),
		CheckOutDate:   utils.FormatLocaleDateTime(res.CheckOut),
		TotalCents:     totalCents,
		TotalFormatted: utils.FormatCurrencyBRL(totalCents),
		CreatedAt:      res.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := uc.events.PublishReservationCreated(ctx, event); err != nil {
		// Best effort: the reservation is committed, the document can be
		// regenerated later from the persisted record.
		log.Printf("create-reservation: publish event failed: %v", err)
	}

	return success("Reservation created successfully!", res), nil
}
