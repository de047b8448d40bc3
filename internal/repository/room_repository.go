package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lluanbs/celestial-resort/internal/model"
)

// RoomRepo provides access to the `rooms` table.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

var ErrRoomNumberExists = errors.New("room number already exists")

// Create inserts a new room row. Duplicate room numbers map to
// ErrRoomNumberExists.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms (id, room_number, price_cents) VALUES (?,?,?)",
		room.ID, room.RoomNumber, room.PriceCents)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrRoomNumberExists
		}
		return err
	}
	return nil
}

// List returns every room ordered by room number.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, room_number, price_cents, created_at FROM rooms ORDER BY room_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.PriceCents, &room.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ExistsByNumber reports whether a room with the given human-facing
// number exists.
func (r *RoomRepo) ExistsByNumber(ctx context.Context, roomNumber string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rooms WHERE room_number=?", strings.TrimSpace(roomNumber)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IDsExist reports whether every id in the slice matches a room row.
// An empty slice reports false.
func (r *RoomRepo) IDsExist(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	query := "SELECT COUNT(*) FROM rooms WHERE id IN (" + placeholders(len(ids)) + ")"
	var n int
	if err := r.DB.QueryRowContext(ctx, query, asArgs(ids)...).Scan(&n); err != nil {
		return false, err
	}
	return n == len(ids), nil
}

// SumPricesByIDs returns the total price in cents of the rooms matching
// the given ids. Rooms without a match simply do not contribute; callers
// are expected to validate existence beforehand.
func (r *RoomRepo) SumPricesByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := "SELECT COALESCE(SUM(price_cents),0) FROM rooms WHERE id IN (" + placeholders(len(ids)) + ")"
	var sum int64
	if err := r.DB.QueryRowContext(ctx, query, asArgs(ids)...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// NumbersByIDs resolves the human-facing room numbers for the given ids,
// ordered by room number for deterministic output.
func (r *RoomRepo) NumbersByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := "SELECT room_number FROM rooms WHERE id IN (" + placeholders(len(ids)) + ") ORDER BY room_number"
	rows, err := r.DB.QueryContext(ctx, query, asArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	numbers := make([]string, 0, len(ids))
	for rows.Next() {
		var num string
		if err := rows.Scan(&num); err != nil {
			return nil, err
		}
		numbers = append(numbers, num)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}

// placeholders returns n comma-separated `?` markers for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func asArgs(ids []string) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
