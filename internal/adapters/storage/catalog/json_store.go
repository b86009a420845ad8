package catalog

import (
	"context"
	"path/filepath"
	"sync"

	"junglepark/internal/adapters/storage"
	domain "junglepark/internal/domain/catalog"
)

// MenuJSONStore implements MenuStore on a wholesale JSON document.
type MenuJSONStore struct {
	mu   sync.Mutex
	path string
}

// NewMenuJSONStore creates a MenuJSONStore under dataDir.
func NewMenuJSONStore(dataDir string) *MenuJSONStore {
	return &MenuJSONStore{path: filepath.Join(dataDir, "menu.json")}
}

// List loads the full menu collection.
// POST: Returns an empty slice when no document exists yet
func (s *MenuJSONStore) List(_ context.Context) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []domain.MenuItem{}
	if _, err := storage.ReadDocument(s.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveAll rewrites the menu collection in full.
func (s *MenuJSONStore) SaveAll(_ context.Context, items []domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []domain.MenuItem{}
	}
	return storage.WriteDocument(s.path, items)
}

// ProgramJSONStore implements ProgramStore on a wholesale JSON document.
type ProgramJSONStore struct {
	mu   sync.Mutex
	path string
}

// NewProgramJSONStore creates a ProgramJSONStore under dataDir.
func NewProgramJSONStore(dataDir string) *ProgramJSONStore {
	return &ProgramJSONStore{path: filepath.Join(dataDir, "programs.json")}
}

// List loads the full program collection.
// POST: Returns an empty slice when no document exists yet
func (s *ProgramJSONStore) List(_ context.Context) ([]domain.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	programs := []domain.Program{}
	if _, err := storage.ReadDocument(s.path, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// SaveAll rewrites the program collection in full.
func (s *ProgramJSONStore) SaveAll(_ context.Context, programs []domain.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if programs == nil {
		programs = []domain.Program{}
	}
	return storage.WriteDocument(s.path, programs)
}
