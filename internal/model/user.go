package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a guest account as stored in the `users` table.
// BalanceCents is the prepaid balance debited at check-in; it is created
// at zero and mutated only through the balance-update and check-in flows.
//
// Fields:
//  ID           – v4 UUID primary key (users.id).
//  Name         – display name shown on reservation documents.
//  Email        – unique, normalized to lower case.
//  PasswordHash – bcrypt hash; the plain password is never stored.
//  BalanceCents – account balance in cents, never negative.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	BalanceCents int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrUserName  = errors.New("user name is required")
	ErrUserEmail = errors.New("user email is required")
)

// NewUser builds a user with a fresh UUID and a zero balance. The email
// is normalized the same way the repository normalizes lookups.
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrUserName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrUserEmail
	}
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		BalanceCents: 0,
	}, nil
}
