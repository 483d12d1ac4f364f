// Package store defines the string-keyed store contract the vault
// encrypts into, together with ready-made backends: in-memory, JSON file,
// SQLite, PostgreSQL and Redis.
//
// Backends treat keys and values as opaque strings. The keys they see are
// already pseudonymized and the values already encrypted by the caller, so
// none of the backends needs to be trusted with plaintext.
package store

import (
	"context"

	"github.com/MKhiriev/go-secure-kv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/store_mock.go -package=mock

// KeyValue is a persistent string-to-string store with change
// notifications. All implementations in this package are safe for
// concurrent use.
type KeyValue interface {
	// Get returns the value stored under key. Fails with [ErrKeyNotFound]
	// when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key. Order is backend-defined.
	Keys(ctx context.Context) ([]string, error)

	// Subscribe registers listener for change events on this store and
	// returns its cancel function. Events carry the storage-level key and
	// are delivered synchronously after the mutation succeeds.
	Subscribe(listener models.ChangeListener) func()

	// Close releases the backend's resources. The store must not be used
	// afterwards.
	Close() error
}
