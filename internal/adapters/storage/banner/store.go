package banner

import (
	"context"

	domain "junglepark/internal/domain/banner"
)

// Store persists the banner collection.
type Store interface {
	List(ctx context.Context) ([]domain.Banner, error)
	SaveAll(ctx context.Context, banners []domain.Banner) error
}
