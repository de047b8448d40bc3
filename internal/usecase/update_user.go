package usecase

import (
	"context"
	"net/http"
)

// UpdateUserBalance sets a user's balance to an absolute amount of
// cents. This is the only balance mutation besides the check-in debit.
type UpdateUserBalance struct {
	users UserStore
}

func NewUpdateUserBalance(users UserStore) *UpdateUserBalance {
	return &UpdateUserBalance{users: users}
}

func (uc *UpdateUserBalance) Run(ctx context.Context, userID string, balanceCents int64) (Verdict, error) {
	exists, err := uc.users.Exists(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}
	if !exists {
		return failure(http.StatusBadRequest, "User not found!"), nil
	}
	if balanceCents < 0 {
		return failure(http.StatusBadRequest, "Balance cannot be negative!"), nil
	}
	if err := uc.users.UpdateBalance(ctx, userID, balanceCents); err != nil {
		return Verdict{}, err
	}
	return success("User balance successfully updated!", nil), nil
}

// UpdateUserName changes a user's display name. Existing reservations
// keep the denormalized name they were created with.
type UpdateUserName struct {
	users UserStore
}

func NewUpdateUserName(users UserStore) *UpdateUserName {
	return &UpdateUserName{users: users}
}

func (uc *UpdateUserName) Run(ctx context.Context, userID, name string) (Verdict, error) {
	exists, err := uc.users.Exists(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}
	if !exists {
		return failure(http.StatusBadRequest, "User not found!"), nil
	}
	if name == "" {
		return failure(http.StatusBadRequest, "User name is required!"), nil
	}
	if err := uc.users.UpdateName(ctx, userID, name); err != nil {
		return Verdict{}, err
	}
	return success("User name successfully updated!", nil), nil
}
