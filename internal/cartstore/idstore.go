package cartstore

import (
	"os"
	"strings"
	"sync"
)

// IDStore persists the cart identifier between sessions. The stored id is the
// only bridge to the upstream cart resource: losing it silently starts a new
// cart.
type IDStore interface {
	Get() (string, bool)
	Set(id string) error
	Clear() error
}

// MemoryIDStore keeps the cart id in memory, for tests and short-lived
// sessions.
type MemoryIDStore struct {
	mu sync.Mutex
	id string
}

func NewMemoryIDStore() *MemoryIDStore {
	return &MemoryIDStore{}
}

func (s *MemoryIDStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != ""
}

func (s *MemoryIDStore) Set(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

func (s *MemoryIDStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}

// FileIDStore persists the cart id to a single file, the local-storage
// equivalent for CLI sessions.
type FileIDStore struct {
	mu   sync.Mutex
	path string
}

func NewFileIDStore(path string) *FileIDStore {
	return &FileIDStore{path: path}
}

func (s *FileIDStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(data))
	return id, id != ""
}

func (s *FileIDStore) Set(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(id), 0o600)
}

func (s *FileIDStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
