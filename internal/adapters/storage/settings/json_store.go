package settings

import (
	"context"
	"path/filepath"
	"sync"

	"junglepark/internal/adapters/storage"
	domain "junglepark/internal/domain/settings"
)

// JSONStore implements Store on a wholesale JSON document.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a JSONStore under dataDir.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{path: filepath.Join(dataDir, "settings.json")}
}

// Get loads the settings document.
// POST: Returns defaults when no document exists yet
func (s *JSONStore) Get(_ context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value := domain.Defaults()
	if _, err := storage.ReadDocument(s.path, &value); err != nil {
		return domain.Settings{}, err
	}
	return value, nil
}

// Save rewrites the settings document in full.
// POST: Document on disk matches value exactly
func (s *JSONStore) Save(_ context.Context, value domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.WriteDocument(s.path, value)
}
