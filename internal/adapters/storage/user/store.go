package user

import (
	"context"
	"errors"

	domain "junglepark/internal/domain/user"
)

// ErrNotFound is returned when no user matches a lookup.
var ErrNotFound = errors.New("user not found")

// Store persists the user collection. Mutations follow the wholesale
// read-modify-write convention: callers List, edit in memory, then SaveAll.
type Store interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	SaveAll(ctx context.Context, users []domain.User) error
}
