package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lluanbs/celestial-resort/internal/usecase"
)

// RoomHandler exposes room registration and listing.
type RoomHandler struct {
	CreateRoom *usecase.CreateRoom
	ListRooms  *usecase.ListRooms
}

func NewRoomHandler(create *usecase.CreateRoom, list *usecase.ListRooms) *RoomHandler {
	return &RoomHandler{CreateRoom: create, ListRooms: list}
}

// Create handles POST /v1/room.
func (h *RoomHandler) Create(c echo.Context) error {
	var req usecase.CreateRoomInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_number required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.CreateRoom.Run(ctx, req)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// List handles GET /v1/rooms. Responses are served through the GET
// response cache when Redis is available.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.ListRooms.Run(ctx)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}
