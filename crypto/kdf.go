package crypto

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/text/unicode/norm"
)

// kdfInfo domain-separates this protocol's HKDF expansion from any other
// use of the same input material.
const kdfInfo = "DefaultEncryptionProtocol"

// stretchedPasswordLength is the fixed output size requested from the key
// stretching function before the stretched bytes join the input key
// material.
const stretchedPasswordLength = 32

// deriveKey builds the symmetric key for a single entry.
//
// The input key material is fingerprint ‖ contentSalt ‖ NFKD(logicalKey);
// when stretchedPassword is non-nil it is appended as well, which is what
// makes a password-protected entry undecryptable without that password.
// HKDF (HMAC-SHA-512) then extracts with preferenceSalt and expands with
// the fixed info label to exactly outLen bytes.
//
// Identical inputs always produce identical output bytes; decrypt relies on
// reproducing the encrypt-time key this way.
func deriveKey(fingerprint, contentSalt, preferenceSalt []byte, logicalKey string, stretchedPassword []byte, outLen int) ([]byte, error) {
	normalized := norm.NFKD.String(logicalKey)

	ikm := make([]byte, 0, len(fingerprint)+len(contentSalt)+len(normalized)+len(stretchedPassword))
	ikm = append(ikm, fingerprint...)
	ikm = append(ikm, contentSalt...)
	ikm = append(ikm, normalized...)
	ikm = append(ikm, stretchedPassword...)
	defer Wipe(ikm)

	key := make([]byte, outLen)
	if _, err := io.ReadFull(hkdf.New(sha512.New, ikm, preferenceSalt, []byte(kdfInfo)), key); err != nil {
		Wipe(key)
		return nil, err
	}

	return key, nil
}
