package notification

import (
	"context"

	domain "junglepark/internal/domain/notification"
)

// Store persists the append-only notification log. Entries are never
// mutated or deleted; the log grows without bound.
type Store interface {
	Append(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
}
