// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/models"
)

// fileStore is the JSON-file-backed [KeyValue]. The whole store is one
// map serialized to disk; every mutation rewrites the file through a
// uniquely named temporary neighbour and an atomic rename, so a crash
// mid-write never leaves a half-written store behind.
type fileStore struct {
	mu        sync.Mutex
	path      string
	entries   map[string]string
	listeners *ListenerHub
	logger    *logger.Logger
}

// NewFileStore constructs a [KeyValue] persisted as one JSON object at
// path. An existing file is loaded eagerly; a missing one is created on
// the first write.
func NewFileStore(path string, log *logger.Logger) (KeyValue, error) {
	entries, err := loadEntriesFile(path)
	if err != nil {
		log.Err(err).Str("func", "NewFileStore").Str("path", path).Msg("error loading store file")
		return nil, err
	}

	return &fileStore{
		path:      path,
		entries:   entries,
		listeners: NewListenerHub(),
		logger:    log,
	}, nil
}

func loadEntriesFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading store file: %w", err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("error decoding store file: %w", err)
	}

	return entries, nil
}

func (f *fileStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}

	return value, nil
}

func (f *fileStore) Put(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	previous, existed := f.entries[key]
	f.entries[key] = value
	err := f.persist()
	if err != nil {
		// keep memory and disk in agreement
		if existed {
			f.entries[key] = previous
		} else {
			delete(f.entries, key)
		}
	}
	f.mu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "fileStore.Put").Str("path", f.path).Msg("failed to persist store file")
		return err
	}

	f.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangePut})

	return nil
}

func (f *fileStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	previous, existed := f.entries[key]
	var err error
	if existed {
		delete(f.entries, key)
		if err = f.persist(); err != nil {
			f.entries[key] = previous
		}
	}
	f.mu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "fileStore.Remove").Str("path", f.path).Msg("failed to persist store file")
		return err
	}

	if existed {
		f.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})
	}

	return nil
}

func (f *fileStore) Keys(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.entries))
	for key := range f.entries {
		keys = append(keys, key)
	}

	return keys, nil
}

func (f *fileStore) Subscribe(listener models.ChangeListener) func() {
	return f.listeners.Subscribe(listener)
}

func (f *fileStore) Close() error {
	return nil
}

// persist writes the current entries map to disk. Callers hold the mutex.
func (f *fileStore) persist() error {
	raw, err := json.Marshal(f.entries)
	if err != nil {
		return fmt.Errorf("error encoding store file: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", f.path, uuid.NewString())
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("error writing store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error replacing store file: %w", err)
	}

	return nil
}
