package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lluanbs/celestial-resort/internal/model"
)

// UserRepo provides access to the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a new user row. Duplicate emails map to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, balance_cents) VALUES (?,?,?,?,?)",
		u.ID, u.Name, u.Email, u.PasswordHash, u.BalanceCents)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// Exists reports whether a user with the given id exists.
func (r *UserRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE id=?", id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,balance_cents,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.BalanceCents, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,balance_cents,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.BalanceCents, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UpdateBalance sets the user's balance to an absolute amount of cents.
func (r *UserRepo) UpdateBalance(ctx context.Context, id string, balanceCents int64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET balance_cents=? WHERE id=?", balanceCents, id)
	return err
}

// UpdateName sets the user's display name.
func (r *UserRepo) UpdateName(ctx context.Context, id, name string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=? WHERE id=?", name, id)
	return err
}
