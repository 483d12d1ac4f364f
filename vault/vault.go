// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-secure-kv/crypto"
	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/models"
	"github.com/MKhiriev/go-secure-kv/store"
)

// preferenceSaltLength is the size of the per-store salt generated on
// first open.
const preferenceSaltLength = 16

// Reserved entry names and their digest domains. The salt entry key is
// derived without the salt (it cannot depend on the value it locates); the
// validator entry key is salt-scoped like a normal pseudonym but lives in
// its own usage domain, so no logical key can ever collide with it.
const (
	saltEntryName  = "preference-salt"
	saltEntryUsage = "preferenceSalt"

	validatorEntryName  = "password-validator"
	validatorEntryUsage = "passwordValidator"
)

// RecoveryPolicy selects what Get does with an entry that exists but fails
// to decrypt: a changed fingerprint, a foreign salt, or plain corruption
// all look the same at that point.
type RecoveryPolicy int

const (
	// RecoveryFail returns the decrypt error to the caller and leaves the
	// entry in place. The default.
	RecoveryFail RecoveryPolicy = iota

	// RecoveryRemove deletes the broken entry and reports not-found, so one
	// undecryptable value does not wedge the vault forever.
	RecoveryRemove
)

// String returns a short human-readable name for the recovery policy.
func (p RecoveryPolicy) String() string {
	switch p {
	case RecoveryFail:
		return "fail"
	case RecoveryRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Config assembles a [Vault]. Every field is optional: the zero value
// opens an unprotected vault with the default protocol capabilities and a
// host-bound fingerprint.
type Config struct {
	// Password protects the vault's entries beyond the device binding.
	// It is copied and kept masked in memory until Close. Empty means no
	// password.
	Password []byte

	// Recovery selects the broken-entry behavior of Get. Default:
	// [RecoveryFail].
	Recovery RecoveryPolicy

	// Fingerprint binds ciphertexts to the running environment. Default:
	// a host fingerprint from hostname, OS, architecture and user id.
	Fingerprint crypto.EncryptionFingerprint

	// Cipher, Strength and Stretcher override the corresponding protocol
	// capabilities. Defaults are the protocol's own: AES-GCM, 128-bit
	// keys, Argon2id.
	Cipher    crypto.SymmetricEncryption
	Strength  crypto.KeyStrength
	Stretcher crypto.KeyStretchingFunction

	// Logger receives diagnostics from Open and Close. Operations log
	// through the context. Default: a no-op logger.
	Logger *logger.Logger
}

// secureVault is the private [Vault] implementation. The RWMutex lets
// ordinary operations run concurrently while ChangePassword and Close get
// exclusive access to swap or destroy the held password.
type secureVault struct {
	mu           sync.RWMutex
	kv           store.KeyValue
	protocol     crypto.EncryptionProtocol
	password     *maskedBytes // nil when the vault has no password
	recovery     RecoveryPolicy
	saltKey      string
	validatorKey string
	listeners    *store.ListenerHub
	logger       *logger.Logger
	closed       bool
}

// Open builds a [Vault] over kv. On the first open of a store it generates
// and persists the preference salt; on every later open it loads the same
// salt back, so pseudonyms and derived keys stay stable for the store's
// lifetime. When the store carries a password validator, the configured
// password must open it or Open fails with [ErrInvalidPassword].
//
// The vault takes ownership of kv: closing the vault closes the store.
func Open(ctx context.Context, kv store.KeyValue, cfg Config) (Vault, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	digest := crypto.NewHKDFContentKeyDigest()
	saltKey := digest.Derive([]byte(saltEntryName), saltEntryUsage)

	salt, err := loadOrCreateSalt(ctx, kv, saltKey)
	if err != nil {
		log.Err(err).Str("func", "vault.Open").Msg("error preparing preference salt")
		return nil, err
	}
	defer crypto.Wipe(salt)

	fingerprint := cfg.Fingerprint
	if fingerprint == nil {
		fingerprint, err = crypto.NewHostFingerprint()
		if err != nil {
			log.Err(err).Str("func", "vault.Open").Msg("error building host fingerprint")
			return nil, err
		}
	}

	validatorMaterial := make([]byte, 0, len(validatorEntryName)+len(salt))
	validatorMaterial = append(validatorMaterial, validatorEntryName...)
	validatorMaterial = append(validatorMaterial, salt...)
	validatorKey := digest.Derive(validatorMaterial, validatorEntryUsage)

	protocol, err := crypto.NewEncryptionProtocol(crypto.ProtocolConfig{
		PreferenceSalt: salt,
		Fingerprint:    fingerprint,
		Cipher:         cfg.Cipher,
		Strength:       cfg.Strength,
		Stretcher:      cfg.Stretcher,
	})
	if err != nil {
		log.Err(err).Str("func", "vault.Open").Msg("error building encryption protocol")
		return nil, err
	}

	var password *maskedBytes
	if len(cfg.Password) > 0 {
		password, err = newMaskedBytes(cfg.Password)
		if err != nil {
			return nil, err
		}
	}

	v := &secureVault{
		kv:           kv,
		protocol:     protocol,
		password:     password,
		recovery:     cfg.Recovery,
		saltKey:      saltKey,
		validatorKey: validatorKey,
		listeners:    store.NewListenerHub(),
		logger:       log,
	}

	if err := v.checkPassword(ctx); err != nil {
		log.Err(err).Str("func", "vault.Open").Msg("password check failed")
		if password != nil {
			password.wipe()
		}
		return nil, err
	}

	return v, nil
}

// loadOrCreateSalt returns the store's preference salt, generating and
// persisting a fresh one when the store has never been opened.
func loadOrCreateSalt(ctx context.Context, kv store.KeyValue, saltKey string) ([]byte, error) {
	raw, err := kv.Get(ctx, saltKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		salt := make([]byte, preferenceSaltLength)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, fmt.Errorf("error generating preference salt: %w", err)
		}
		if err := kv.Put(ctx, saltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
			return nil, fmt.Errorf("error persisting preference salt: %w", err)
		}

		return salt, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading preference salt: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding preference salt: %w", err)
	}

	return salt, nil
}

// checkPassword reconciles the configured password with the store's
// validator entry: absent validator plus a password writes one (first
// password-protected open), present validator must open with the password
// the vault was given, nil included.
func (v *secureVault) checkPassword(ctx context.Context) error {
	raw, err := v.kv.Get(ctx, v.validatorKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		if v.password == nil {
			return nil
		}

		password := v.revealPassword()
		defer crypto.Wipe(password)

		return v.writeValidator(ctx, password)
	}
	if err != nil {
		return fmt.Errorf("error loading password validator: %w", err)
	}

	wire, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}

	password := v.revealPassword()
	defer crypto.Wipe(password)

	if _, err := v.protocol.Decrypt(v.validatorKey, password, wire); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}

	return nil
}

// writeValidator seals the fixed validator plaintext under password and
// stores it at the reserved validator key.
func (v *secureVault) writeValidator(ctx context.Context, password []byte) error {
	wire, err := v.protocol.Encrypt(v.validatorKey, password, []byte(validatorEntryName))
	if err != nil {
		return fmt.Errorf("error sealing password validator: %w", err)
	}
	if err := v.kv.Put(ctx, v.validatorKey, base64.StdEncoding.EncodeToString(wire)); err != nil {
		return fmt.Errorf("error persisting password validator: %w", err)
	}

	return nil
}

// revealPassword returns a fresh copy of the vault password, or nil when
// there is none. Callers wipe the copy. Callers hold v.mu in at least read
// mode.
func (v *secureVault) revealPassword() []byte {
	if v.password == nil {
		return nil
	}

	return v.password.reveal()
}

func (v *secureVault) Get(ctx context.Context, key string) (string, error) {
	plaintext, err := v.GetBytes(ctx, key)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func (v *secureVault) GetBytes(ctx context.Context, key string) ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return nil, ErrVaultClosed
	}

	storageKey := v.protocol.DeriveStorageKey(key)

	raw, err := v.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	wire, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, v.recoverBrokenEntry(ctx, key, storageKey, fmt.Errorf("error decoding stored entry: %w", err))
	}

	password := v.revealPassword()
	defer crypto.Wipe(password)

	plaintext, err := v.protocol.Decrypt(storageKey, password, wire)
	if err != nil {
		return nil, v.recoverBrokenEntry(ctx, key, storageKey, err)
	}

	return plaintext, nil
}

func (v *secureVault) Put(ctx context.Context, key string, value string) error {
	return v.PutBytes(ctx, key, []byte(value))
}

func (v *secureVault) PutBytes(ctx context.Context, key string, value []byte) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return ErrVaultClosed
	}

	storageKey := v.protocol.DeriveStorageKey(key)

	password := v.revealPassword()
	defer crypto.Wipe(password)

	wire, err := v.protocol.Encrypt(storageKey, password, value)
	if err != nil {
		return err
	}

	if err := v.kv.Put(ctx, storageKey, base64.StdEncoding.EncodeToString(wire)); err != nil {
		return err
	}

	v.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangePut})

	return nil
}

func (v *secureVault) Contains(ctx context.Context, key string) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return false, ErrVaultClosed
	}

	_, err := v.kv.Get(ctx, v.protocol.DeriveStorageKey(key))
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (v *secureVault) Remove(ctx context.Context, key string) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return ErrVaultClosed
	}

	storageKey := v.protocol.DeriveStorageKey(key)

	_, err := v.kv.Get(ctx, storageKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := v.kv.Remove(ctx, storageKey); err != nil {
		return err
	}

	v.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})

	return nil
}

func (v *secureVault) Clear(ctx context.Context) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return ErrVaultClosed
	}

	keys, err := v.kv.Keys(ctx)
	if err != nil {
		return err
	}

	for _, storageKey := range keys {
		if storageKey == v.saltKey {
			continue
		}
		if err := v.kv.Remove(ctx, storageKey); err != nil {
			return err
		}
	}

	// A password-protected vault keeps its validator, so the password stays
	// required on the next open.
	if v.password != nil {
		password := v.revealPassword()
		defer crypto.Wipe(password)

		return v.writeValidator(ctx, password)
	}

	return nil
}

func (v *secureVault) Len(ctx context.Context) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return 0, ErrVaultClosed
	}

	keys, err := v.kv.Keys(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, storageKey := range keys {
		if storageKey == v.saltKey || storageKey == v.validatorKey {
			continue
		}
		count++
	}

	return count, nil
}

func (v *secureVault) ChangePassword(ctx context.Context, newPassword []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrVaultClosed
	}
	if len(newPassword) == 0 {
		newPassword = nil
	}

	log := logger.FromContext(ctx)

	oldPassword := v.revealPassword()
	defer crypto.Wipe(oldPassword)

	keys, err := v.kv.Keys(ctx)
	if err != nil {
		return err
	}

	// Decrypt everything up front: an entry the current password cannot
	// open aborts the whole change before any write happens.
	plaintexts := make(map[string][]byte, len(keys))
	defer func() {
		for _, plaintext := range plaintexts {
			crypto.Wipe(plaintext)
		}
	}()

	for _, storageKey := range keys {
		if storageKey == v.saltKey || storageKey == v.validatorKey {
			continue
		}

		raw, err := v.kv.Get(ctx, storageKey)
		if err != nil {
			return err
		}
		wire, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("error decoding stored entry: %w", err)
		}
		plaintext, err := v.protocol.Decrypt(storageKey, oldPassword, wire)
		if err != nil {
			return fmt.Errorf("error reading entry for password change: %w", err)
		}
		plaintexts[storageKey] = plaintext
	}

	for storageKey, plaintext := range plaintexts {
		wire, err := v.protocol.Encrypt(storageKey, newPassword, plaintext)
		if err != nil {
			return err
		}
		if err := v.kv.Put(ctx, storageKey, base64.StdEncoding.EncodeToString(wire)); err != nil {
			return fmt.Errorf("error rewriting entry for password change: %w", err)
		}
	}

	if newPassword != nil {
		if err := v.writeValidator(ctx, newPassword); err != nil {
			return err
		}
	} else if err := v.kv.Remove(ctx, v.validatorKey); err != nil {
		return fmt.Errorf("error removing password validator: %w", err)
	}

	var masked *maskedBytes
	if newPassword != nil {
		masked, err = newMaskedBytes(newPassword)
		if err != nil {
			return err
		}
	}
	if v.password != nil {
		v.password.wipe()
	}
	v.password = masked

	log.Info().Str("func", "secureVault.ChangePassword").Int("entries", len(plaintexts)).Msg("vault password changed")

	return nil
}

func (v *secureVault) Subscribe(listener models.ChangeListener) func() {
	return v.listeners.Subscribe(listener)
}

func (v *secureVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true

	if v.password != nil {
		v.password.wipe()
		v.password = nil
	}

	v.logger.Debug().Str("func", "secureVault.Close").Msg("vault closed")

	return v.kv.Close()
}

// recoverBrokenEntry applies the recovery policy to an entry that exists
// but cannot be opened. Under [RecoveryRemove] the entry is deleted and
// the caller reports not-found; otherwise cause comes back unchanged.
func (v *secureVault) recoverBrokenEntry(ctx context.Context, key, storageKey string, cause error) error {
	if v.recovery != RecoveryRemove {
		return cause
	}

	log := logger.FromContext(ctx)
	if err := v.kv.Remove(ctx, storageKey); err != nil {
		log.Err(err).Str("func", "secureVault.recoverBrokenEntry").Msg("error removing broken entry")
		return cause
	}

	log.Warn().Err(cause).Str("func", "secureVault.recoverBrokenEntry").Msg("removed entry that failed to decrypt")
	v.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})

	return store.ErrKeyNotFound
}
