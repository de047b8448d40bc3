package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lluanbs/celestial-resort/internal/model"
)

// ReservationRepo provides access to the `reservations` table and its
// `reservation_rooms` join table. All timestamps are stored in UTC.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// ErrInsufficientFunds is returned by CheckIn when the balance debit
// would take the user below zero. Handlers translate it into the same
// response as the pre-check in the use case.
var ErrInsufficientFunds = errors.New("insufficient balance")

// Create inserts a reservation together with its room links in a single
// transaction, then reads the row back to populate timestamps.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO reservations (id, user_id, user_name, check_in, check_out, total_cents, status) VALUES (?,?,?,?,?,?,?)",
		res.ID, res.UserID, res.UserName, res.CheckIn, res.CheckOut, res.TotalCents, string(res.Status))
	if err != nil {
		return err
	}
	if len(res.Rooms) > 0 {
		query := "INSERT INTO reservation_rooms (reservation_id, room_id) VALUES "
		args := make([]interface{}, 0, len(res.Rooms)*2)
		for i, roomID := range res.Rooms {
			if i > 0 {
				query += ","
			}
			query += "(?,?)"
			args = append(args, res.ID, roomID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	err = tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM reservations WHERE id=?", res.ID).
		Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// IsAnyRoomOccupied reports whether any of the given rooms belongs to a
// reservation in an occupying state (ACTIVE, PENDING, CHECKED_IN or
// CHECKED_OUT). COMPLETED and REJECTED reservations free their rooms.
func (r *ReservationRepo) IsAnyRoomOccupied(ctx context.Context, roomIDs []string) (bool, error) {
	if len(roomIDs) == 0 {
		return false, nil
	}
	statuses := model.OccupyingStatuses()
	query := `SELECT COUNT(*) FROM reservations r
	          JOIN reservation_rooms rr ON rr.reservation_id = r.id
	          WHERE rr.room_id IN (` + placeholders(len(roomIDs)) + `)
	          AND r.status IN (` + placeholders(len(statuses)) + `)`
	args := make([]interface{}, 0, len(roomIDs)+len(statuses))
	for _, id := range roomIDs {
		args = append(args, id)
	}
	for _, s := range statuses {
		args = append(args, s)
	}
	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByID fetches a reservation and its room ids. sql.ErrNoRows is
// returned when the reservation does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	var res model.Reservation
	var status string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,user_name,check_in,check_out,total_cents,status,created_at,updated_at FROM reservations WHERE id=? LIMIT 1",
		id).Scan(&res.ID, &res.UserID, &res.UserName, &res.CheckIn, &res.CheckOut,
		&res.TotalCents, &status, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	res.Status = model.ReservationStatus(status)

	rows, err := r.DB.QueryContext(ctx,
		"SELECT room_id FROM reservation_rooms WHERE reservation_id=?", id)
	if err != nil {
		return model.Reservation{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var roomID string
		if err := rows.Scan(&roomID); err != nil {
			return model.Reservation{}, err
		}
		res.Rooms = append(res.Rooms, roomID)
	}
	if err := rows.Err(); err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// UpdateStatus sets the reservation status.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET status=? WHERE id=?", string(status), id)
	return err
}

// CheckIn debits the owning user's balance by amountCents and marks the
// reservation CHECKED_IN, both inside one transaction so a failure on
// either write leaves no inconsistent state. The debit re-checks the
// balance at write time and returns ErrInsufficientFunds when it would
// go negative.
func (r *ReservationRepo) CheckIn(ctx context.Context, reservationID, userID string, amountCents int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx,
		"UPDATE users SET balance_cents = balance_cents - ? WHERE id=? AND balance_cents >= ?",
		amountCents, userID, amountCents)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientFunds
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE reservations SET status=? WHERE id=?",
		string(model.StatusCheckedIn), reservationID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
