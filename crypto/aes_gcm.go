package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// aesGcmEncryption is the AES-GCM implementation of [SymmetricEncryption].
// A random 12-byte nonce is prepended to the ciphertext so that the
// decryption side can locate it: blob = nonce ‖ ciphertext.
type aesGcmEncryption struct {
	rand io.Reader
}

// NewAESGCMEncryption constructs the default [SymmetricEncryption]: AES in
// Galois/Counter Mode with a fresh random nonce per call.
func NewAESGCMEncryption() SymmetricEncryption {
	return &aesGcmEncryption{rand: rand.Reader}
}

// KeyLength implements [SymmetricEncryption]: AES-128 for
// [KeyStrengthHigh], AES-256 for [KeyStrengthVeryHigh].
func (a *aesGcmEncryption) KeyLength(strength KeyStrength) int {
	if strength == KeyStrengthVeryHigh {
		return 32 // 256 bits
	}
	return 16 // 128 bits
}

// Encrypt implements [SymmetricEncryption]. Returns an error if cipher
// creation or the random nonce read fails.
func (a *aesGcmEncryption) Encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(a.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [SymmetricEncryption]. The blob must be at least as
// long as the GCM nonce. Returns an error if the blob is too short, the key
// is wrong, or the ciphertext is corrupted (authentication-tag mismatch).
func (a *aesGcmEncryption) Decrypt(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	return plaintext, nil
}
