package cache

import "sync"

// MemoryBackend keeps entries in a mutex-guarded map. It never fails.
type MemoryBackend[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
}

// NewMemoryBackend constructs an empty in-process backend.
func NewMemoryBackend[V any]() *MemoryBackend[V] {
	return &MemoryBackend[V]{entries: make(map[string]Entry[V])}
}

func (m *MemoryBackend[V]) Load(key string) (Entry[V], bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	return e, ok, nil
}

func (m *MemoryBackend[V]) Store(key string, e Entry[V]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = e
	return nil
}

func (m *MemoryBackend[V]) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *MemoryBackend[V]) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]Entry[V])
	return nil
}

func (m *MemoryBackend[V]) Len() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries), nil
}
