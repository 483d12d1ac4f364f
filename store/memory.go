package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secure-kv/models"
)

// memoryStore is the map-backed [KeyValue], for tests and ephemeral use.
type memoryStore struct {
	mu        sync.RWMutex
	entries   map[string]string
	listeners *ListenerHub
}

// NewMemoryStore constructs an empty in-memory [KeyValue]. Nothing is
// persisted; Close is a no-op.
func NewMemoryStore() KeyValue {
	return &memoryStore{
		entries:   make(map[string]string),
		listeners: NewListenerHub(),
	}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}

	return value, nil
}

func (m *memoryStore) Put(_ context.Context, key string, value string) error {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()

	m.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangePut})

	return nil
}

func (m *memoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	_, existed := m.entries[key]
	delete(m.entries, key)
	m.mu.Unlock()

	if existed {
		m.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})
	}

	return nil
}

func (m *memoryStore) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *memoryStore) Subscribe(listener models.ChangeListener) func() {
	return m.listeners.Subscribe(listener)
}

func (m *memoryStore) Close() error {
	return nil
}
