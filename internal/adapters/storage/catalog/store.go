package catalog

import (
	"context"

	domain "junglepark/internal/domain/catalog"
)

// MenuStore persists the menu collection.
type MenuStore interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	SaveAll(ctx context.Context, items []domain.MenuItem) error
}

// ProgramStore persists the program collection.
type ProgramStore interface {
	List(ctx context.Context) ([]domain.Program, error)
	SaveAll(ctx context.Context, programs []domain.Program) error
}
