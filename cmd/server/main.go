package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lluanbs/celestial-resort/internal/config"
	"github.com/lluanbs/celestial-resort/internal/database"
	"github.com/lluanbs/celestial-resort/internal/handler"
	"github.com/lluanbs/celestial-resort/internal/queue"
	"github.com/lluanbs/celestial-resort/internal/repository"
	"github.com/lluanbs/celestial-resort/internal/router"
	"github.com/lluanbs/celestial-resort/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	userRepo := repository.NewUserRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	publisher := queue.NewPublisher(cfg.AMQPURL)

	users := handler.NewUserHandler(
		usecase.NewCreateUser(userRepo, cfg.BcryptCost),
		usecase.NewAuthenticateUser(userRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTTLMin, cfg.RefreshTTLDays),
		usecase.NewRefreshSession(userRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTTLMin, cfg.RefreshTTLDays),
		usecase.NewLogoutUser(tokenRepo),
		usecase.NewUpdateUserBalance(userRepo),
		usecase.NewUpdateUserName(userRepo),
	)
	rooms := handler.NewRoomHandler(usecase.NewCreateRoom(roomRepo), usecase.NewListRooms(roomRepo))
	reservations := handler.NewReservationHandler(
		usecase.NewCreateReservation(reservationRepo, userRepo, roomRepo, publisher),
		usecase.NewConfirmReservation(reservationRepo),
		usecase.NewCheckInReservation(reservationRepo, userRepo),
		usecase.NewDownloadReservation(cfg.DownloadDir),
		cfg.UploadDir,
	)

	// Confirmation documents are rendered off the request path by the
	// queue worker.
	go queue.StartReservationConsumer(cfg.AMQPURL, cfg.DownloadDir)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, users, rooms, reservations, cfg, rdb)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
