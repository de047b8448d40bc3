package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/repository"
)

// CreateRoomInput carries a room registration command.
type CreateRoomInput struct {
	RoomNumber string `json:"room_number"`
	PriceCents int64  `json:"room_price"`
}

// CreateRoom registers a new room. Room numbers are unique; the
// pre-check and the unique index both enforce it.
type CreateRoom struct {
	rooms RoomStore
}

func NewCreateRoom(rooms RoomStore) *CreateRoom {
	return &CreateRoom{rooms: rooms}
}

func (uc *CreateRoom) Run(ctx context.Context, in CreateRoomInput) (Verdict, error) {
	exists, err := uc.rooms.ExistsByNumber(ctx, in.RoomNumber)
	if err != nil {
		return Verdict{}, err
	}
	if exists {
		return failure(http.StatusBadRequest, "Room already exists!"), nil
	}
	room, err := model.NewRoom(in.RoomNumber, in.PriceCents)
	if err != nil {
		return failure(http.StatusBadRequest, "Invalid room data!"), nil
	}
	if err := uc.rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrRoomNumberExists) {
			return failure(http.StatusBadRequest, "Room already exists!"), nil
		}
		return Verdict{}, err
	}
	return success("Room created successfully!", nil), nil
}

// ListRooms returns every registered room. The response is a natural
// fit for the GET response cache; room data changes only on creation.
type ListRooms struct {
	rooms RoomStore
}

func NewListRooms(rooms RoomStore) *ListRooms {
	return &ListRooms{rooms: rooms}
}

func (uc *ListRooms) Run(ctx context.Context) (Verdict, error) {
	rooms, err := uc.rooms.List(ctx)
	if err != nil {
		return Verdict{}, err
	}
	return success("Rooms successfully listed!", rooms), nil
}
