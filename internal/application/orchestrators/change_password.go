package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"junglepark/internal/domain/user"
)

// UserStoreForChangePassword defines the store interface needed by
// ChangePassword.
type UserStoreForChangePassword interface {
	List(ctx context.Context) ([]user.User, error)
	SaveAll(ctx context.Context, users []user.User) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	Username        string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	UserStore UserStoreForChangePassword
}

var (
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
)

// ExecuteChangePassword validates the current password and stores a fresh
// hash of the new one.
// PRE: Username identifies a logged-in user
// POST: PasswordHash replaced, MustChangePassword cleared
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	users, err := deps.UserStore.List(ctx)
	if err != nil {
		return err
	}

	var current *user.User
	for i := range users {
		if users[i].Username == input.Username {
			current = &users[i]
			break
		}
	}
	if current == nil {
		return ErrInvalidCredentials
	}

	if current.CheckPassword(input.CurrentPassword) != nil {
		return ErrCurrentPasswordWrong
	}
	if len(input.NewPassword) < 6 {
		return user.ErrPasswordTooShort
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if err := current.SetPassword(input.NewPassword); err != nil {
		return err
	}
	current.MustChangePassword = false

	if err := deps.UserStore.SaveAll(ctx, users); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "username", input.Username)
	return nil
}
