// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// defaultContentSaltLength is the per-entry salt size used when the config
// does not override it.
const defaultContentSaltLength = 16

// contentKeyUsage is the domain label under which storage-key pseudonyms
// are derived.
const contentKeyUsage = "contentKey"

// ProtocolConfig assembles an [EncryptionProtocol]. PreferenceSalt and
// Fingerprint are required; every other field has a working default.
type ProtocolConfig struct {
	// PreferenceSalt scopes all derived keys and pseudonyms to one store
	// instance. It is generated once at store creation and must never be
	// regenerated: it is a key-derivation input, so replacing it makes
	// every existing entry undecryptable.
	PreferenceSalt []byte

	// Fingerprint supplies the environment-binding bytes mixed into every
	// derived key.
	Fingerprint EncryptionFingerprint

	// Cipher seals entry payloads. Default: AES-GCM.
	Cipher SymmetricEncryption

	// Strength selects the cipher key length. Default: [KeyStrengthHigh].
	Strength KeyStrength

	// Stretcher hardens optional per-call passwords. Default: Argon2id.
	Stretcher KeyStretchingFunction

	// Obfuscators builds the keyed masking transform applied to ciphertext
	// before serialization. Default: the HKDF-XOR obfuscator.
	Obfuscators ObfuscatorFactory

	// Digest produces storage-key pseudonyms. Default: HKDF digest with a
	// 20-byte hex output.
	Digest ContentKeyDigest

	// ContentSaltLength is the per-entry salt size in bytes. Default: 16.
	ContentSaltLength int

	// Rand is the entropy source for content salts. Default:
	// crypto/rand.Reader.
	Rand io.Reader
}

// defaultEncryptionProtocol is the private implementation of
// [EncryptionProtocol]. All fields are set at construction and never
// mutated, so one instance may serve concurrent encrypt/decrypt calls.
type defaultEncryptionProtocol struct {
	preferenceSalt []byte
	fingerprint    EncryptionFingerprint
	cipher         SymmetricEncryption
	stretcher      KeyStretchingFunction
	obfuscators    ObfuscatorFactory
	digest         ContentKeyDigest
	keyLength      int
	saltLength     int
	rand           io.Reader
}

// NewEncryptionProtocol constructs an [EncryptionProtocol] from cfg,
// filling in defaults for every capability left nil. The preference salt is
// copied, so the caller's slice may be reused or wiped afterwards.
func NewEncryptionProtocol(cfg ProtocolConfig) (EncryptionProtocol, error) {
	if len(cfg.PreferenceSalt) == 0 {
		return nil, errors.New("preference salt is required")
	}
	if cfg.Fingerprint == nil {
		return nil, errors.New("encryption fingerprint is required")
	}

	if cfg.Cipher == nil {
		cfg.Cipher = NewAESGCMEncryption()
	}
	if cfg.Stretcher == nil {
		cfg.Stretcher = NewArgon2KeyStretcher()
	}
	if cfg.Obfuscators == nil {
		cfg.Obfuscators = NewHKDFXorObfuscatorFactory()
	}
	if cfg.Digest == nil {
		cfg.Digest = NewHKDFContentKeyDigest()
	}
	if cfg.ContentSaltLength <= 0 {
		cfg.ContentSaltLength = defaultContentSaltLength
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}

	preferenceSalt := make([]byte, len(cfg.PreferenceSalt))
	copy(preferenceSalt, cfg.PreferenceSalt)

	return &defaultEncryptionProtocol{
		preferenceSalt: preferenceSalt,
		fingerprint:    cfg.Fingerprint,
		cipher:         cfg.Cipher,
		stretcher:      cfg.Stretcher,
		obfuscators:    cfg.Obfuscators,
		digest:         cfg.Digest,
		keyLength:      cfg.Cipher.KeyLength(cfg.Strength),
		saltLength:     cfg.ContentSaltLength,
		rand:           cfg.Rand,
	}, nil
}

// DeriveStorageKey implements [EncryptionProtocol]. The pseudonym is the
// content-key digest of logicalKey ‖ preferenceSalt, so the storage layer
// never sees the real key and two stores with different salts keep
// unlinkable key sets.
func (p *defaultEncryptionProtocol) DeriveStorageKey(logicalKey string) string {
	material := make([]byte, 0, len(logicalKey)+len(p.preferenceSalt))
	material = append(material, logicalKey...)
	material = append(material, p.preferenceSalt...)

	return p.digest.Derive(material, contentKeyUsage)
}

// Encrypt implements [EncryptionProtocol].
//
//  1. Generate a fresh random content salt.
//  2. Obtain a fingerprint copy.
//  3. Derive the entry key (stretching the password first when given).
//  4. Seal the plaintext with the cipher.
//  5. Obfuscate the ciphertext keyed on logicalKey ‖ fingerprint.
//  6. Serialize the wire entry.
//
// The fingerprint copy and the derived key are wiped on every exit path.
func (p *defaultEncryptionProtocol) Encrypt(logicalKey string, password, plaintext []byte) ([]byte, error) {
	contentSalt := make([]byte, p.saltLength)
	if _, err := io.ReadFull(p.rand, contentSalt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	fingerprint, err := p.fingerprint.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}
	defer Wipe(fingerprint)

	key, err := p.deriveEntryKey(logicalKey, fingerprint, contentSalt, password)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	ciphertext, err := p.cipher.Encrypt(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	obfuscator := p.obfuscators.CreateObfuscator(obfuscationKey(logicalKey, fingerprint))
	err = obfuscator.Obfuscate(ciphertext)
	obfuscator.ClearKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	return encodeWireEntry(contentSalt, ciphertext)
}

// Decrypt implements [EncryptionProtocol]. The version byte is checked
// before any cryptographic work; structural defects surface as
// [ErrMalformedWireEntry]. Past parsing, the obfuscation is reversed, the
// entry key re-derived from the recovered content salt, and the cipher
// opens the ciphertext. Which of the cryptographic checks rejected an entry
// is not distinguishable from the returned error.
func (p *defaultEncryptionProtocol) Decrypt(logicalKey string, password, wireBytes []byte) ([]byte, error) {
	entry, err := parseWireEntry(wireBytes)
	if err != nil {
		return nil, err
	}

	fingerprint, err := p.fingerprint.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}
	defer Wipe(fingerprint)

	obfuscator := p.obfuscators.CreateObfuscator(obfuscationKey(logicalKey, fingerprint))
	err = obfuscator.Deobfuscate(entry.ciphertext)
	obfuscator.ClearKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	key, err := p.deriveEntryKey(logicalKey, fingerprint, entry.contentSalt, password)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	plaintext, err := p.cipher.Decrypt(key, entry.ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	return plaintext, nil
}

// deriveEntryKey stretches the password when one is given and derives the
// cipher key for a single entry. The stretched password is wiped before
// returning.
func (p *defaultEncryptionProtocol) deriveEntryKey(logicalKey string, fingerprint, contentSalt, password []byte) ([]byte, error) {
	var stretched []byte
	if password != nil {
		var err error
		stretched, err = p.stretcher.Stretch(contentSalt, password, stretchedPasswordLength)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
		}
		defer Wipe(stretched)
	}

	key, err := deriveKey(fingerprint, contentSalt, p.preferenceSalt, logicalKey, stretched, p.keyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	return key, nil
}

// obfuscationKey is logicalKey ‖ fingerprint. The obfuscator retains the
// slice and wipes it on ClearKey.
func obfuscationKey(logicalKey string, fingerprint []byte) []byte {
	key := make([]byte, 0, len(logicalKey)+len(fingerprint))
	key = append(key, logicalKey...)
	key = append(key, fingerprint...)

	return key
}
