package usecase

import (
	"context"
	"time"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/queue"
)

// UserStore is the contract the use cases need against user persistence.
// Absent rows surface as sql.ErrNoRows from the Get methods.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	UpdateBalance(ctx context.Context, id string, balanceCents int64) error
	UpdateName(ctx context.Context, id, name string) error
}

// RoomStore is the contract against room persistence.
type RoomStore interface {
	Create(ctx context.Context, room *model.Room) error
	List(ctx context.Context) ([]model.Room, error)
	ExistsByNumber(ctx context.Context, roomNumber string) (bool, error)
	IDsExist(ctx context.Context, ids []string) (bool, error)
	SumPricesByIDs(ctx context.Context, ids []string) (int64, error)
	NumbersByIDs(ctx context.Context, ids []string) ([]string, error)
}

// ReservationStore is the contract against reservation persistence.
// CheckIn performs the balance debit and the status update atomically.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	IsAnyRoomOccupied(ctx context.Context, roomIDs []string) (bool, error)
	GetByID(ctx context.Context, id string) (model.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error
	CheckIn(ctx context.Context, reservationID, userID string, amountCents int64) error
}

// TokenStore persists refresh tokens issued at authentication. Tokens
// are addressed by their SHA-256 hash; validation surfaces revoked or
// expired tokens as sql.ErrNoRows.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
}

// EventPublisher delivers post-commit events to the message broker.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event queue.ReservationCreatedEvent) error
}
