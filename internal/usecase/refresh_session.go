package usecase

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/lluanbs/celestial-resort/internal/utils"
)

// RefreshSession exchanges a valid refresh token for a new access token.
// The refresh token is rotated on every use: the presented token is
// revoked and a fresh one is issued, so a leaked token stops working as
// soon as the legitimate client refreshes.
type RefreshSession struct {
	users          UserStore
	tokens         TokenStore
	jwtSecret      string
	accessTTLMin   int
	refreshTTLDays int
}

func NewRefreshSession(users UserStore, tokens TokenStore, jwtSecret string, accessTTLMin, refreshTTLDays int) *RefreshSession {
	return &RefreshSession{
		users:          users,
		tokens:         tokens,
		jwtSecret:      jwtSecret,
		accessTTLMin:   accessTTLMin,
		refreshTTLDays: refreshTTLDays,
	}
}

func (uc *RefreshSession) Run(ctx context.Context, refreshRaw string) (Verdict, error) {
	presentedHash := utils.HashRefreshRaw(refreshRaw)
	userID, err := uc.tokens.ValidateRefresh(ctx, presentedHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusUnauthorized, "Invalid refresh token!"), nil
		}
		return Verdict{}, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return failure(http.StatusUnauthorized, "User not found!"), nil
		}
		return Verdict{}, err
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
	if err := uc.tokens.RevokeByHash(ctx, presentedHash); err != nil {
		return Verdict{}, err
	}

	session := AuthSession{
		UserID:       user.ID,
		UserName:     user.Name,
		AccessToken:  access.Token,
		ExpiresIn:    int64(uc.accessTTLMin) * 60,
		RefreshToken: refresh.Raw,
	}
	return success("Session successfully refreshed!", session), nil
}

// LogoutUser revokes a refresh token so it can no longer mint access
// tokens. Revoking an unknown or already revoked token still reports
// success; the end state is the same either way.
type LogoutUser struct {
	tokens TokenStore
}

func NewLogoutUser(tokens TokenStore) *LogoutUser {
	return &LogoutUser{tokens: tokens}
}

func (uc *LogoutUser) Run(ctx context.Context, refreshRaw string) (Verdict, error) {
	if err := uc.tokens.RevokeByHash(ctx, utils.HashRefreshRaw(refreshRaw)); err != nil {
		return Verdict{}, err
	}
	return success("User successfully logged out!", nil), nil
}
