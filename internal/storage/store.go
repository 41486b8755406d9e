package storage

import (
	"errors"
	"sync"
)

var (
	// ErrKeyNotFound is returned when a key doesn't exist in the store
	ErrKeyNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned when a value is larger than the store allows
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store defines the interface for durable key-value storage
type Store interface {
	// Get retrieves a value by key
	// Returns ErrKeyNotFound if the key doesn't exist
	Get(key string) ([]byte, error)

	// Put stores a value with the given key
	// Overwrites any existing value for the key
	Put(key string, value []byte) error
}

// MemoryStore implements Store with an in-memory map.
// It backs tests and the memory-only fallback.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get returns a copy of the stored value
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	if !exists {
		return nil, ErrKeyNotFound
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Put stores a copy of value
func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored

	return nil
}
