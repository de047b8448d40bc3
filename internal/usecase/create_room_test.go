package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lluanbs/celestial-resort/internal/model"
)

func TestCreateRoom_Success(t *testing.T) {
	var created *model.Room
	rooms := &mockRoomStore{
		existsByNumberFn: func(ctx context.Context, roomNumber string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, room *model.Room) error {
			created = room
			return nil
		},
	}

	uc := NewCreateRoom(rooms)
	v, err := uc.Run(context.Background(), CreateRoomInput{RoomNumber: "101", PriceCents: 25000})

	assert.NoError(t, err)
	assert.True(t, v.Success)
	assert.Equal(t, "Room created successfully!", v.Message)
	if assert.NotNil(t, created) {
		assert.Equal(t, "101", created.RoomNumber)
		assert.Equal(t, int64(25000), created.PriceCents)
		assert.NotEmpty(t, created.ID)
	}
}

func TestCreateRoom_NumberTaken(t *testing.T) {
	rooms := &mockRoomStore{
		existsByNumberFn: func(ctx context.Context, roomNumber string) (bool, error) { return true, nil },
		createFn: func(ctx context.Context, room *model.Room) error {
			t.Fatal("no room must be written for a taken number")
			return nil
		},
	}

	uc := NewCreateRoom(rooms)
	v, err := uc.Run(context.Background(), CreateRoomInput{RoomNumber: "101", PriceCents: 25000})

	assert.NoError(t, err)
	assert.False(t, v.Success)
	assert.Equal(t, "Room already exists!", v.Message)
}

func TestListRooms(t *testing.T) {
	rooms := &mockRoomStore{
		listFn: func(ctx context.Context) ([]model.Room, error) {
			return []model.Room{
				{ID: "r1", RoomNumber: "101", PriceCents: 25000},
				{ID: "r2", RoomNumber: "102", PriceCents: 30000},
			}, nil
		},
	}

	uc := NewListRooms(rooms)
	v, err := uc.Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, v.Success)
	assert.Equal(t, "Rooms successfully listed!", v.Message)
	listed, ok := v.Data.([]model.Room)
	if assert.True(t, ok) {
		assert.Len(t, listed, 2)
		assert.Equal(t, "101", listed[0].RoomNumber)
	}
}

func TestListRooms_Empty(t *testing.T) {
	rooms := &mockRoomStore{
		listFn: func(ctx context.Context) ([]model.Room, error) { return []model.Room{}, nil },
	}

	uc := NewListRooms(rooms)
	v, err := uc.Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, v.Success)
	assert.Empty(t, v.Data)
}

func TestCreateRoom_InvalidPrice(t *testing.T) {
	rooms := &mockRoomStore{
		existsByNumberFn: func(ctx context.Context, roomNumber string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, room *model.Room) error {
			t.Fatal("no room must be written with a non-positive price")
			return nil
		},
	}

	uc := NewCreateRoom(rooms)
	v, err := uc.Run(context.Background(), CreateRoomInput{RoomNumber: "101", PriceCents: 0})

	assert.NoError(t, err)
	assert.False(t, v.Success)
	assert.Equal(t, "Invalid room data!", v.Message)
}
