package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfContentKeyDigest is the default [ContentKeyDigest]: an HKDF-SHA-256
// expansion of the key material with the usage label as the
// domain-separating info, rendered as lowercase hex.
type hkdfContentKeyDigest struct {
	outLength int
}

// NewHKDFContentKeyDigest constructs a [ContentKeyDigest] producing 20-byte
// (40 hex character) pseudonyms.
func NewHKDFContentKeyDigest() ContentKeyDigest {
	return &hkdfContentKeyDigest{outLength: 20}
}

// Derive implements [ContentKeyDigest].
func (d *hkdfContentKeyDigest) Derive(keyMaterial []byte, usage string) string {
	out := make([]byte, d.outLength)
	// Reading d.outLength bytes stays far below the HKDF expansion cap and
	// cannot fail.
	_, _ = io.ReadFull(hkdf.New(sha256.New, keyMaterial, nil, []byte(usage)), out)

	return hex.EncodeToString(out)
}
