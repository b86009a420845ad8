package settings

import (
	"context"

	domain "junglepark/internal/domain/settings"
)

// Store persists the singleton Settings document.
type Store interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, value domain.Settings) error
}
