package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FSBackend stores one JSON file per key under a base directory, so cache
// entries can be shared between processes on the same host. Values must be
// JSON-marshalable.
type FSBackend[V any] struct {
	basePath string
	mu       sync.Mutex
}

// NewFSBackend constructs a filesystem-backed store rooted at basePath.
func NewFSBackend[V any](basePath string) *FSBackend[V] {
	return &FSBackend[V]{basePath: basePath}
}

func (s *FSBackend[V]) Load(key string) (Entry[V], bool, error) {
	var entry Entry[V]
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&entry); err != nil {
		return entry, false, err
	}
	return entry, true, nil
}

func (s *FSBackend[V]) Store(key string, e Entry[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	// Write-then-rename so concurrent readers never see a torn file.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FSBackend[V]) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FSBackend[V]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.list()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := os.Remove(filepath.Join(s.basePath, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (s *FSBackend[V]) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.list()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

func (s *FSBackend[V]) list() ([]string, error) {
	dirEntries, err := os.ReadDir(s.basePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		names = append(names, de.Name())
	}
	return names, nil
}

func (s *FSBackend[V]) path(key string) string {
	return filepath.Join(s.basePath, sanitizeFilename(key)+".json")
}

func sanitizeFilename(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
