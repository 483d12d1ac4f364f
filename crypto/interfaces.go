package crypto

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/crypto_mock.go -package=mock

// KeyStrength selects the symmetric key size class used by a
// [SymmetricEncryption] implementation.
type KeyStrength int

const (
	// KeyStrengthHigh selects 128-bit keys (the default).
	KeyStrengthHigh KeyStrength = iota

	// KeyStrengthVeryHigh selects 256-bit keys.
	KeyStrengthVeryHigh
)

// EncryptionProtocol converts logical keys and plaintext values into
// pseudonymized storage keys and authenticated, obfuscated wire blobs
// suitable for any string-keyed store.
//
// Every ciphertext is bound to the environment fingerprint and the
// per-store preference salt supplied at construction, so identical
// plaintexts written under different installations or different stores
// never match, and two writes of the same value under the same key differ
// as well.
//
// Implementations hold no mutable state across calls and are safe for
// concurrent use provided the capability implementations they were built
// from are. Operations are synchronous and CPU-bound; key stretching in
// particular is slow on purpose, so latency-sensitive callers should keep
// encrypt/decrypt off their hot path.
type EncryptionProtocol interface {
	// DeriveStorageKey maps a plaintext logical key to its deterministic
	// storage pseudonym. The same key under the same store salt always
	// yields the same pseudonym; a different store salt yields a different
	// one.
	DeriveStorageKey(logicalKey string) string

	// Encrypt seals plaintext under a key derived from logicalKey, the
	// fingerprint, a fresh random content salt, the store salt, and the
	// stretched password when one is given (nil means no password). The
	// returned wire blob embeds everything Decrypt needs except the
	// secrets.
	Encrypt(logicalKey string, password, plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. It fails with [ErrVersionMismatch] or
	// [ErrMalformedWireEntry] on structural problems and with
	// [ErrCryptoFailure] on any cryptographic one.
	Decrypt(logicalKey string, password, wireBytes []byte) ([]byte, error)
}

// SymmetricEncryption is the pluggable authenticated cipher used for entry
// payloads.
type SymmetricEncryption interface {
	// Encrypt seals plaintext under key. Nonce management is the
	// implementation's own business; whatever Decrypt will need must
	// travel inside the returned ciphertext, and a (key, nonce) pair must
	// never repeat.
	Encrypt(key, plaintext []byte) ([]byte, error)

	// Decrypt opens ciphertext produced by Encrypt with the same key. It
	// fails on a wrong key and on any modification of the ciphertext.
	Decrypt(key, ciphertext []byte) ([]byte, error)

	// KeyLength reports the key size in bytes this cipher requires for the
	// given strength.
	KeyLength(strength KeyStrength) int
}

// KeyStretchingFunction hardens low-entropy passwords into key material.
type KeyStretchingFunction interface {
	// Stretch derives outLen bytes from password and salt. Deterministic
	// for identical inputs, and computationally expensive (memory- and/or
	// CPU-hard).
	Stretch(salt, password []byte, outLen int) ([]byte, error)
}

// DataObfuscator is a keyed, reversible byte-masking transform applied to
// ciphertext before serialization. It disguises structure only; the
// security of stored entries comes from [SymmetricEncryption] alone.
type DataObfuscator interface {
	// Obfuscate masks data in place.
	Obfuscate(data []byte) error

	// Deobfuscate reverses Obfuscate in place.
	Deobfuscate(data []byte) error

	// ClearKey wipes the obfuscator's key material. Call it as soon as the
	// transform is done.
	ClearKey()
}

// ObfuscatorFactory builds [DataObfuscator] instances keyed on caller
// material.
type ObfuscatorFactory interface {
	// CreateObfuscator returns an obfuscator keyed on key. The obfuscator
	// may retain the slice; ClearKey wipes it.
	CreateObfuscator(key []byte) DataObfuscator
}

// ContentKeyDigest maps plaintext key material to a storage-safe pseudonym.
type ContentKeyDigest interface {
	// Derive returns a deterministic one-way text rendering of
	// keyMaterial, domain-separated by usage.
	Derive(keyMaterial []byte, usage string) string
}

// EncryptionFingerprint supplies the byte vector that binds ciphertexts to
// the running environment. Implementations must be deterministic for a
// given environment; once the fingerprint changes, every existing entry
// fails authentication on decrypt.
type EncryptionFingerprint interface {
	// Bytes returns a fresh copy of the fingerprint. The caller owns the
	// copy and must wipe it after use. Fails when the environment cannot
	// currently produce a stable fingerprint.
	Bytes() ([]byte, error)
}
