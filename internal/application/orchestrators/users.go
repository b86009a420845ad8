package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"junglepark/internal/domain/user"
)

// UserStoreForAdmin defines the store interface needed by the user
// management orchestrators.
type UserStoreForAdmin interface {
	List(ctx context.Context) ([]user.User, error)
	SaveAll(ctx context.Context, users []user.User) error
}

// CreateUserInput carries input for the create-user orchestrator.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UserAdminDeps holds dependencies for the user management orchestrators.
type UserAdminDeps struct {
	UserStore  UserStoreForAdmin
	GenerateID func() string
}

var (
	ErrUserMissingFields = errors.New("username and password are required")
	ErrUserExists        = errors.New("username is already taken")
)

// ExecuteCreateUser adds a new account to the user collection.
// PRE: Role defaults to Administrator when blank (original form behaviour)
// POST: Collection contains the new user with a hashed password
func ExecuteCreateUser(ctx context.Context, input CreateUserInput, deps UserAdminDeps) error {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return ErrUserMissingFields
	}

	users, err := deps.UserStore.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username {
			return ErrUserExists
		}
	}

	role := input.Role
	if role == "" {
		role = user.RoleAdministrator
	}

	u := user.User{
		ID:       deps.GenerateID(),
		Username: username,
		Role:     role,
	}
	if err := u.SetPassword(input.Password); err != nil {
		return err
	}

	users = append(users, u)
	if err := deps.UserStore.SaveAll(ctx, users); err != nil {
		return err
	}
	slog.Info("user_event", "event", "user_created", "username", username, "role", role)
	return nil
}

// ExecuteUpdateUserRole changes the role of the user with the given id.
// The root account is silently skipped: its role can never change.
// POST: Matching non-root user has the new role
func ExecuteUpdateUserRole(ctx context.Context, userID, role string, deps UserAdminDeps) error {
	users, err := deps.UserStore.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID && !users[i].IsRoot() {
			users[i].Role = role
			slog.Info("user_event", "event", "role_updated", "username", users[i].Username, "role", role)
		}
	}
	return deps.UserStore.SaveAll(ctx, users)
}

// ExecuteDeleteUser removes the user with the given id. The root account is
// never removed, regardless of the id supplied.
// POST: Collection contains no non-root user with the given id
func ExecuteDeleteUser(ctx context.Context, userID string, deps UserAdminDeps) error {
	users, err := deps.UserStore.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0:0]
	for _, u := range users {
		if u.ID == userID && !u.IsRoot() {
			slog.Info("user_event", "event", "user_deleted", "username", u.Username)
			continue
		}
		kept = append(kept, u)
	}
	return deps.UserStore.SaveAll(ctx, kept)
}
