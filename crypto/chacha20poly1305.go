package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// chaCha20Poly1305Encryption is the ChaCha20-Poly1305 implementation of
// [SymmetricEncryption], for targets without AES hardware support. Blob
// layout matches the AES-GCM implementation: nonce ‖ ciphertext.
type chaCha20Poly1305Encryption struct {
	rand io.Reader
}

// NewChaCha20Poly1305Encryption constructs a [SymmetricEncryption] backed
// by ChaCha20-Poly1305.
func NewChaCha20Poly1305Encryption() SymmetricEncryption {
	return &chaCha20Poly1305Encryption{rand: rand.Reader}
}

// KeyLength implements [SymmetricEncryption]. ChaCha20-Poly1305 takes a
// single key size, so both strengths map to 256 bits.
func (c *chaCha20Poly1305Encryption) KeyLength(strength KeyStrength) int {
	return chacha20poly1305.KeySize
}

// Encrypt implements [SymmetricEncryption].
func (c *chaCha20Poly1305Encryption) Encrypt(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [SymmetricEncryption].
func (c *chaCha20Poly1305Encryption) Decrypt(key, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonceSize := aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	return plaintext, nil
}
