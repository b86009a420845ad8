package banner

import (
	"context"
	"path/filepath"
	"sync"

	"junglepark/internal/adapters/storage"
	domain "junglepark/internal/domain/banner"
)

// JSONStore implements Store on a wholesale JSON document.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a JSONStore under dataDir.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{path: filepath.Join(dataDir, "banners.json")}
}

// List loads the full banner collection.
// POST: Returns an empty slice when no document exists yet
func (s *JSONStore) List(_ context.Context) ([]domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	banners := []domain.Banner{}
	if _, err := storage.ReadDocument(s.path, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// SaveAll rewrites the banner collection in full.
func (s *JSONStore) SaveAll(_ context.Context, banners []domain.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if banners == nil {
		banners = []domain.Banner{}
	}
	return storage.WriteDocument(s.path, banners)
}
