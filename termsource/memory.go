package termsource

import (
	"context"
	"sync"
)

// MemorySource is an in-memory Source implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemorySource struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemorySource creates a new in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		docs: make(map[string][]byte),
	}
}

// Put stores a document.
func (m *MemorySource) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	m.docs[name] = copied
}

// Fetch returns the named document.
func (m *MemorySource) Fetch(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[name]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}
