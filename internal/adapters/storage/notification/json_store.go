package notification

import (
	"context"
	"path/filepath"
	"sync"

	"junglepark/internal/adapters/storage"
	domain "junglepark/internal/domain/notification"
)

// JSONStore implements Store on a wholesale JSON document. The log file
// keeps its historical name: it simulates the outbound WhatsApp channel.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a JSONStore under dataDir.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{path: filepath.Join(dataDir, "whatsapp-log.json")}
}

// Append adds one entry to the end of the log.
// POST: Log on disk contains every previous entry plus entry
func (s *JSONStore) Append(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return storage.WriteDocument(s.path, entries)
}

// List loads the full log.
// POST: Returns an empty slice when no document exists yet
func (s *JSONStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() ([]domain.Entry, error) {
	entries := []domain.Entry{}
	if _, err := storage.ReadDocument(s.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
