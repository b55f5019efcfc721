package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists session state as a JSON object in a single file with
// 0600 permissions. Every operation re-reads and re-writes the file, so a
// store that failed earlier (missing directory, permission change) recovers
// as soon as the medium becomes writable again. I/O errors are swallowed:
// Get degrades to a miss, Set and Remove to no-ops.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path. The file is created
// lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) read() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	// A corrupt file is treated as empty rather than surfaced.
	_ = json.Unmarshal(data, &values)
	return values
}

func (s *FileStore) write(values map[string]string) {
	data, err := json.Marshal(values)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0700)
	_ = os.WriteFile(s.path, data, 0600)
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.read()[key]
	return v, ok
}

// Set stores value under key.
func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.read()
	values[key] = value
	s.write(values)
}

// Remove deletes key.
func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.read()
	if _, ok := values[key]; !ok {
		return
	}
	delete(values, key)
	s.write(values)
}
