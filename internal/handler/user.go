package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lluanbs/celestial-resort/internal/usecase"
)

// UserHandler exposes registration, login, session management and
// profile mutations.
type UserHandler struct {
	CreateUser        *usecase.CreateUser
	AuthenticateUser  *usecase.AuthenticateUser
	RefreshSession    *usecase.RefreshSession
	LogoutUser        *usecase.LogoutUser
	UpdateUserBalance *usecase.UpdateUserBalance
	UpdateUserName    *usecase.UpdateUserName
}

func NewUserHandler(create *usecase.CreateUser, auth *usecase.AuthenticateUser, refresh *usecase.RefreshSession, logout *usecase.LogoutUser, balance *usecase.UpdateUserBalance, name *usecase.UpdateUserName) *UserHandler {
	return &UserHandler{
		CreateUser:        create,
		AuthenticateUser:  auth,
		RefreshSession:    refresh,
		LogoutUser:        logout,
		UpdateUserBalance: balance,
		UpdateUserName:    name,
	}
}

// Register handles POST /v1/auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserName == "" || req.EmailAddress == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_name/email_address/password required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.CreateUser.Run(ctx, req)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// Login handles POST /v1/auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req usecase.AuthenticateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.EmailAddress == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email_address/password required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.AuthenticateUser.Run(ctx, req)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// Refresh handles POST /v1/auth/refresh.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.RefreshSession.Run(ctx, req.RefreshToken)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// Logout handles POST /v1/auth/logout.
func (h *UserHandler) Logout(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.LogoutUser.Run(ctx, req.RefreshToken)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// UpdateBalance handles PATCH /v1/user/balance.
func (h *UserHandler) UpdateBalance(c echo.Context) error {
	var req struct {
		ID           string `json:"id"`
		BalanceCents int64  `json:"user_balance"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.UpdateUserBalance.Run(ctx, req.ID, req.BalanceCents)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}

// UpdateName handles PATCH /v1/user/name.
func (h *UserHandler) UpdateName(c echo.Context) error {
	var req struct {
		ID       string `json:"id"`
		UserName string `json:"user_name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.UpdateUserName.Run(ctx, req.ID, req.UserName)
	if err != nil {
		return internalError(c)
	}
	return writeVerdict(c, v)
}
