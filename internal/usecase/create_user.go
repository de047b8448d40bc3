package usecase

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/repository"
	"github.com/lluanbs/celestial-resort/internal/utils"
)

// CreateUserInput carries a registration command.
type CreateUserInput struct {
	UserName     string `json:"user_name"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

// CreateUser registers a new guest account with a zero balance. Email
// uniqueness is enforced both here and by the unique index, since two
// registrations can race the pre-check.
type CreateUser struct {
	users      UserStore
	bcryptCost int
}

func NewCreateUser(users UserStore, bcryptCost int) *CreateUser {
	return &CreateUser{users: users, bcryptCost: bcryptCost}
}

func (uc *CreateUser) Run(ctx context.Context, in CreateUserInput) (Verdict, error) {
	if _, err := uc.users.GetByEmail(ctx, in.EmailAddress); err == nil {
		return failure(http.StatusBadRequest, "User already exists!"), nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return Verdict{}, err
	}
	hash, err := utils.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return Verdict{}, err
	}
	user, err := model.NewUser(in.UserName, in.EmailAddress, hash)
	if err != nil {
		return failure(http.StatusBadRequest, "Invalid user data!"), nil
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return failure(http.StatusBadRequest, "User already exists!"), nil
		}
		return Verdict{}, err
	}
	return success("User created successfully!", nil), nil
}
