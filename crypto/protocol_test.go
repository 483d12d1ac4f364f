package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testProtocolConfig(t *testing.T) ProtocolConfig {
	t.Helper()

	fingerprint, err := NewFingerprint(bytes.Repeat([]byte{0xFB}, 16))
	if err != nil {
		t.Fatalf("NewFingerprint error: %v", err)
	}

	return ProtocolConfig{
		PreferenceSalt: bytes.Repeat([]byte{0x55}, 16),
		Fingerprint:    fingerprint,
		Stretcher:      NewFastKeyStretcher(),
	}
}

func newTestProtocol(t *testing.T) EncryptionProtocol {
	t.Helper()

	protocol, err := NewEncryptionProtocol(testProtocolConfig(t))
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}
	return protocol
}

func TestNewEncryptionProtocol_RequiredFields(t *testing.T) {
	fingerprint, err := NewFingerprint([]byte{0x01})
	if err != nil {
		t.Fatalf("NewFingerprint error: %v", err)
	}

	if _, err := NewEncryptionProtocol(ProtocolConfig{Fingerprint: fingerprint}); err == nil {
		t.Fatalf("expected error for missing preference salt")
	}
	if _, err := NewEncryptionProtocol(ProtocolConfig{PreferenceSalt: []byte{0x02}}); err == nil {
		t.Fatalf("expected error for missing fingerprint")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		logicalKey string
		password   []byte
		plaintext  []byte
	}{
		{name: "no password", logicalKey: "user.email", password: nil, plaintext: []byte("user@example.com")},
		{name: "with password", logicalKey: "card.number", password: []byte("s3cr3t"), plaintext: []byte("4111111111111111")},
		{name: "empty plaintext", logicalKey: "empty", password: nil, plaintext: []byte{}},
		{name: "unicode logical key", logicalKey: "ключ-доступа", password: nil, plaintext: []byte("значение")},
		{name: "large plaintext", logicalKey: "blob", password: nil, plaintext: bytes.Repeat([]byte{0xA7}, 40_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protocol := newTestProtocol(t)

			wire, err := protocol.Encrypt(tt.logicalKey, tt.password, tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}

			got, err := protocol.Decrypt(tt.logicalKey, tt.password, wire)
			if err != nil {
				t.Fatalf("Decrypt error: %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(tt.plaintext))
			}
		})
	}
}

func TestEncrypt_DifferentWireBytesEachTime(t *testing.T) {
	protocol := newTestProtocol(t)

	wire1, err := protocol.Encrypt("key", nil, []byte("same value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	wire2, err := protocol.Encrypt("key", nil, []byte("same value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(wire1, wire2) {
		t.Fatalf("expected two encryptions of the same value to differ")
	}

	// The content salts alone (bytes 2..18 for the 16-byte default) must
	// already differ.
	if bytes.Equal(wire1[2:18], wire2[2:18]) {
		t.Fatalf("expected distinct content salts")
	}
}

func TestDeriveStorageKey_DeterministicPerStore(t *testing.T) {
	protocol := newTestProtocol(t)

	k1 := protocol.DeriveStorageKey("user.email")
	k2 := protocol.DeriveStorageKey("user.email")

	if k1 == "" {
		t.Fatalf("expected non-empty pseudonym")
	}
	if k1 != k2 {
		t.Fatalf("expected stable pseudonym, got %q and %q", k1, k2)
	}
	if k1 == "user.email" {
		t.Fatalf("pseudonym must not equal the logical key")
	}
}

func TestDeriveStorageKey_DiffersAcrossStores(t *testing.T) {
	cfgA := testProtocolConfig(t)
	cfgB := testProtocolConfig(t)
	cfgB.PreferenceSalt = bytes.Repeat([]byte{0x77}, 16)

	protocolA, err := NewEncryptionProtocol(cfgA)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}
	protocolB, err := NewEncryptionProtocol(cfgB)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	if protocolA.DeriveStorageKey("user.email") == protocolB.DeriveStorageKey("user.email") {
		t.Fatalf("expected different pseudonyms for different preference salts")
	}
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	protocol := newTestProtocol(t)

	wire, err := protocol.Encrypt("key", nil, []byte("authentic value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Flip one bit in the last ciphertext byte.
	tampered := make([]byte, len(wire))
	copy(tampered, wire)
	tampered[len(tampered)-1] ^= 0x01

	_, err = protocol.Decrypt("key", nil, tampered)
	if !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure, got %v", err)
	}
}

func TestDecrypt_WrongLogicalKeyFails(t *testing.T) {
	protocol := newTestProtocol(t)

	wire, err := protocol.Encrypt("key-a", nil, []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := protocol.Decrypt("key-b", nil, wire); !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure, got %v", err)
	}
}

func TestDecrypt_WrongPasswordFails(t *testing.T) {
	protocol := newTestProtocol(t)

	wire, err := protocol.Encrypt("key", []byte("correct password"), []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := protocol.Decrypt("key", []byte("wrong password"), wire); !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure for wrong password, got %v", err)
	}
	if _, err := protocol.Decrypt("key", nil, wire); !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure for missing password, got %v", err)
	}
}

func TestDecrypt_FingerprintChangeFails(t *testing.T) {
	cfg := testProtocolConfig(t)
	protocol, err := NewEncryptionProtocol(cfg)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	wire, err := protocol.Encrypt("key", nil, []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Same store salt, different environment.
	moved := testProtocolConfig(t)
	moved.Fingerprint, err = NewFingerprint(bytes.Repeat([]byte{0xEE}, 16))
	if err != nil {
		t.Fatalf("NewFingerprint error: %v", err)
	}
	movedProtocol, err := NewEncryptionProtocol(moved)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	if _, err := movedProtocol.Decrypt("key", nil, wire); !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure after fingerprint change, got %v", err)
	}
}

// trackingCipher records Decrypt invocations so tests can assert that no
// cipher work happened.
type trackingCipher struct {
	SymmetricEncryption
	decryptCalls int
}

func (c *trackingCipher) Decrypt(key, ciphertext []byte) ([]byte, error) {
	c.decryptCalls++
	return c.SymmetricEncryption.Decrypt(key, ciphertext)
}

// trackingFingerprint records Bytes invocations.
type trackingFingerprint struct {
	EncryptionFingerprint
	calls int
}

func (f *trackingFingerprint) Bytes() ([]byte, error) {
	f.calls++
	return f.EncryptionFingerprint.Bytes()
}

func TestDecrypt_UnknownVersionFailsBeforeCryptoWork(t *testing.T) {
	cfg := testProtocolConfig(t)
	cipher := &trackingCipher{SymmetricEncryption: NewAESGCMEncryption()}
	fingerprint := &trackingFingerprint{EncryptionFingerprint: cfg.Fingerprint}
	cfg.Cipher = cipher
	cfg.Fingerprint = fingerprint

	protocol, err := NewEncryptionProtocol(cfg)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	wire, err := protocol.Encrypt("key", nil, []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	encryptFingerprintCalls := fingerprint.calls

	wire[0] = 0x7F

	if _, err := protocol.Decrypt("key", nil, wire); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
	if cipher.decryptCalls != 0 {
		t.Fatalf("cipher.Decrypt was called %d times, want 0", cipher.decryptCalls)
	}
	if fingerprint.calls != encryptFingerprintCalls {
		t.Fatalf("fingerprint was consulted after the version gate")
	}
}

func TestDecrypt_MalformedWireEntry(t *testing.T) {
	protocol := newTestProtocol(t)

	wire, err := protocol.Encrypt("key", nil, []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty buffer", raw: []byte{}},
		{name: "version byte only", raw: []byte{0x00}},
		{name: "truncated salt", raw: wire[:10]},
		{name: "truncated ciphertext", raw: wire[:len(wire)-3]},
		{name: "trailing garbage", raw: append(append([]byte{}, wire...), 0xAA)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := protocol.Decrypt("key", nil, tt.raw); !errors.Is(err, ErrMalformedWireEntry) {
				t.Fatalf("expected ErrMalformedWireEntry, got %v", err)
			}
		})
	}
}

func TestDecrypt_DoesNotMutateInputBuffer(t *testing.T) {
	protocol := newTestProtocol(t)

	wire, err := protocol.Encrypt("key", nil, []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	original := make([]byte, len(wire))
	copy(original, wire)

	if _, err := protocol.Decrypt("key", nil, wire); err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(wire, original) {
		t.Fatalf("Decrypt mutated the caller's wire buffer")
	}
}

func TestEncryptDecrypt_FixedScenario(t *testing.T) {
	cfg := ProtocolConfig{
		PreferenceSalt: bytes.Repeat([]byte{0x01}, 16),
	}
	fingerprint, err := NewFingerprint(bytes.Repeat([]byte{0x02}, 16))
	if err != nil {
		t.Fatalf("NewFingerprint error: %v", err)
	}
	cfg.Fingerprint = fingerprint
	cfg.Stretcher = NewFastKeyStretcher()

	protocol, err := NewEncryptionProtocol(cfg)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	wire1, err := protocol.Encrypt("key1", nil, []byte("hello"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := protocol.Decrypt("key1", nil, wire1)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("decrypted %q, want %q", got, "hello")
	}

	wire2, err := protocol.Encrypt("key1", nil, []byte("hello"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Equal(wire1[2:18], wire2[2:18]) {
		t.Fatalf("expected the second encryption to carry a different content salt")
	}
}

func TestEncryptDecrypt_ChaCha20Poly1305Cipher(t *testing.T) {
	cfg := testProtocolConfig(t)
	cfg.Cipher = NewChaCha20Poly1305Encryption()
	cfg.Strength = KeyStrengthVeryHigh

	protocol, err := NewEncryptionProtocol(cfg)
	if err != nil {
		t.Fatalf("NewEncryptionProtocol error: %v", err)
	}

	wire, err := protocol.Encrypt("key", []byte("pw"), []byte("value"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	got, err := protocol.Decrypt("key", []byte("pw"), wire)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("decrypted %q, want %q", got, "value")
	}
}

func TestDeriveKey_NFKDNormalizesLogicalKey(t *testing.T) {
	fingerprint := bytes.Repeat([]byte{0x0F}, 16)
	contentSalt := bytes.Repeat([]byte{0x1F}, 16)
	preferenceSalt := bytes.Repeat([]byte{0x2F}, 16)

	// U+00E9 vs U+0065 U+0301: the same text in composed and decomposed
	// form must derive the same key.
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	k1, err := deriveKey(fingerprint, contentSalt, preferenceSalt, composed, nil, 32)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}
	k2, err := deriveKey(fingerprint, contentSalt, preferenceSalt, decomposed, nil, 32)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}

	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for canonically equivalent logical keys")
	}
}

func TestDeriveKey_PasswordChangesKey(t *testing.T) {
	fingerprint := bytes.Repeat([]byte{0x0F}, 16)
	contentSalt := bytes.Repeat([]byte{0x1F}, 16)
	preferenceSalt := bytes.Repeat([]byte{0x2F}, 16)

	plain, err := deriveKey(fingerprint, contentSalt, preferenceSalt, "key", nil, 32)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}
	stretched, err := NewFastKeyStretcher().Stretch(contentSalt, []byte("password"), stretchedPasswordLength)
	if err != nil {
		t.Fatalf("Stretch error: %v", err)
	}
	withPassword, err := deriveKey(fingerprint, contentSalt, preferenceSalt, "key", stretched, 32)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}

	if bytes.Equal(plain, withPassword) {
		t.Fatalf("expected the stretched password to change the derived key")
	}
}
