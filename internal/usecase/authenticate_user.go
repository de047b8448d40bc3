package usecase

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/utils"
)

// AuthenticateUserInput carries a login command.
type AuthenticateUserInput struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

// AuthSession is the data payload of a successful authentication.
type AuthSession struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// AuthenticateUser verifies credentials and issues a signed access token
// plus a refresh token whose hash is persisted.
type AuthenticateUser struct {
	users          UserStore
	tokens         TokenStore
	jwtSecret      string
	accessTTLMin   int
	refreshTTLDays int
}

func NewAuthenticateUser(users UserStore, tokens TokenStore, jwtSecret string, accessTTLMin, refreshTTLDays int) *AuthenticateUser {
	return &AuthenticateUser{
		users:          users,
		tokens:         tokens,
		jwtSecret:      jwtSecret,
		accessTTLMin:   accessTTLMin,
		refreshTTLDays: refreshTTLDays,
	}
}

func (uc *AuthenticateUser) Run(ctx context.Context, in AuthenticateUserInput) (Verdict, error) {
	user, err := uc.users.GetByEmail(ctx, in.EmailAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusBadRequest, "User not found!"), nil
		}
		return Verdict{}, err
	}
	if !utils.VerifyPassword(user.PasswordHash, in.Password) {
		return failure(http.StatusBadRequest, "Password mismatch!"), nil
	}

	access, err := utils.NewAccessToken(uc.jwtSecret, user.ID, uc.accessTTLMin)
	if err != nil {
		return Verdict{}, err
	}
	refresh, err := utils.NewRefreshToken(uc.refreshTTLDays)
	if err != nil {
		return Verdict{}, err
	}
	if err := uc.tokens.StoreRefresh(ctx, user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return Verdict{}, err
	}

	session := AuthSession{
		UserID:       user.ID,
		UserName:     user.Name,
		AccessToken:  access.Token,
		ExpiresIn:    int64(uc.accessTTLMin) * 60,
		RefreshToken: refresh.Raw,
	}
	return success("User successfully authenticated!", session), nil
}
