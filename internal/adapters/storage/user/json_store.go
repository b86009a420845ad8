package user

import (
	"context"
	"path/filepath"
	"sync"

	"junglepark/internal/adapters/storage"
	domain "junglepark/internal/domain/user"
)

// JSONStore implements Store on a wholesale JSON document.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a JSONStore under dataDir.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{path: filepath.Join(dataDir, "users.json")}
}

// List loads the full user collection.
// POST: Returns an empty slice when no document exists yet
func (s *JSONStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetByUsername scans the collection for an exact username match.
// PRE: username is non-empty
// POST: Returns ErrNotFound when no user matches
func (s *JSONStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.load()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// SaveAll rewrites the user collection in full.
// POST: Document on disk matches users exactly
func (s *JSONStore) SaveAll(_ context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if users == nil {
		users = []domain.User{}
	}
	return storage.WriteDocument(s.path, users)
}

func (s *JSONStore) load() ([]domain.User, error) {
	users := []domain.User{}
	if _, err := storage.ReadDocument(s.path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
