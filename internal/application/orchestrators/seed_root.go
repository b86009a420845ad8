package orchestrators

import (
	"context"
	"log/slog"

	"junglepark/internal/domain/user"
)

// SeedRootDeps holds dependencies for SeedRoot.
type SeedRootDeps struct {
	UserStore  UserStoreForAdmin
	GenerateID func() string
}

// ExecuteSeedRoot creates the protected root Administrator account when the
// user collection is empty. The seeded account must change its password on
// first login. Idempotent.
// POST: At least one user exists; an existing collection is left untouched
func ExecuteSeedRoot(ctx context.Context, password string, deps SeedRootDeps) error {
	users, err := deps.UserStore.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	root := user.User{
		ID:                 deps.GenerateID(),
		Username:           user.RootUsername,
		Role:               user.RoleAdministrator,
		MustChangePassword: true,
	}
	if err := root.SetPassword(password); err != nil {
		return err
	}

	if err := deps.UserStore.SaveAll(ctx, []user.User{root}); err != nil {
		return err
	}
	slog.Info("user_event", "event", "root_seeded")
	return nil
}
