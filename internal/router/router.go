// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/lluanbs/celestial-resort/internal/config"
	"github.com/lluanbs/celestial-resort/internal/handler"
	"github.com/lluanbs/celestial-resort/internal/middleware"
)

// Register mounts every route on the Echo instance. The health check and
// the auth endpoints are public; everything else lives under /v1 behind
// JWT authentication. Rate limiting applies to the whole API and the
// response cache to cacheable methods within it.
func Register(e *echo.Echo, users *handler.UserHandler, rooms *handler.RoomHandler, reservations *handler.ReservationHandler, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	e.GET("/healthz", handler.Health)

	auth := e.Group("/v1/auth")
	auth.POST("/register", users.Register)
	auth.POST("/login", users.Login)
	auth.POST("/refresh", users.Refresh)
	auth.POST("/logout", users.Logout)

	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))

	v1.POST("/reservation", reservations.CreateReservation)
	v1.POST("/reservation/verification", reservations.ConfirmReservation)
	v1.POST("/reservation/checkin", reservations.CheckInReservation)
	v1.POST("/reservation/download", reservations.DownloadReservation)

	v1.PATCH("/user/balance", users.UpdateBalance)
	v1.PATCH("/user/name", users.UpdateName)

	v1.POST("/room", rooms.Create)
	v1.GET("/rooms", rooms.List)
}
