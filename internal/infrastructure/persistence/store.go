// internal/infrastructure/persistence/store.go
package persistence

import (
	"context"
	"errors"
	"sync"
)

// Storage keys for the three persisted snapshots.
const (
	KeyProducts   = "fifi:products"
	KeyCategories = "fifi:categories:v2"
	KeyPayment    = "fifi:payment"
)

// ErrNotFound is returned when a key has no stored snapshot.
var ErrNotFound = errors.New("snapshot not found")

// Store is the key-value boundary the domain stores persist through.
// Each store writes its full JSON snapshot on every mutation; implementations
// are free to add batching or retries without touching call sites.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// MemoryStore is an in-process Store used in tests and as a fallback
// when no Redis is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load retrieves a stored snapshot by key
func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a snapshot under key, replacing any previous value
func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.data[key] = stored
	m.mu.Unlock()
	return nil
}
