// Package vault layers the encryption protocol over a plain [store.KeyValue]
// and exposes the same simple key-value surface. Callers read and write
// plaintext under logical keys; everything that reaches the underlying store
// is a pseudonymized key and an encrypted, base64-encoded value.
//
// A vault owns two reserved entries in its store: the preference salt,
// created on first open and never rewritten, and the password validator,
// present whenever the vault is password-protected. Neither is visible
// through the vault's own operations.
package vault

import (
	"context"

	"github.com/MKhiriev/go-secure-kv/models"
)

// Vault is an encrypted view over a string-keyed store.
//
// All operations are safe for concurrent use. [Vault.ChangePassword] and
// [Vault.Close] are exclusive: they wait for in-flight operations and block
// new ones for their duration.
type Vault interface {
	// Get returns the plaintext stored under key. Fails with
	// [store.ErrKeyNotFound] when the key is absent, and with the decrypt
	// error when the entry exists but cannot be opened (unless the recovery
	// policy removes it, in which case not-found is reported instead).
	Get(ctx context.Context, key string) (string, error)

	// GetBytes is Get for binary values.
	GetBytes(ctx context.Context, key string) ([]byte, error)

	// Put encrypts value and stores it under key, overwriting any previous
	// value.
	Put(ctx context.Context, key string, value string) error

	// PutBytes is Put for binary values.
	PutBytes(ctx context.Context, key string, value []byte) error

	// Contains reports whether an entry exists under key. It checks
	// presence only and does not attempt decryption.
	Contains(ctx context.Context, key string) (bool, error)

	// Remove deletes the entry under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every entry in the vault. The preference salt survives,
	// so the store remains openable and existing pseudonyms stay stable.
	Clear(ctx context.Context) error

	// Len reports the number of entries in the vault, reserved entries
	// excluded.
	Len(ctx context.Context) (int, error)

	// ChangePassword re-encrypts every entry under newPassword and replaces
	// the password validator. An empty newPassword removes password
	// protection. The vault keeps serving the new password afterwards.
	ChangePassword(ctx context.Context, newPassword []byte) error

	// Subscribe registers listener for change events on this vault and
	// returns its cancel function. Events carry plaintext logical keys;
	// Clear produces no events because logical keys cannot be recovered
	// from stored pseudonyms.
	Subscribe(listener models.ChangeListener) func()

	// Close wipes the held password and closes the underlying store. The
	// vault must not be used afterwards; Close itself is idempotent.
	Close() error
}
