package vault

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secure-kv/crypto"
)

// maskedBytes keeps a long-lived secret XOR-masked with a random pad so the
// raw bytes never sit in the heap in the clear between uses. Same idiom as
// the fingerprint wrapper in the crypto package.
type maskedBytes struct {
	masked []byte
	pad    []byte
}

// newMaskedBytes copies and masks data. The caller may wipe its own buffer
// right after the call.
func newMaskedBytes(data []byte) (*maskedBytes, error) {
	pad := make([]byte, len(data))
	if _, err := io.ReadFull(rand.Reader, pad); err != nil {
		return nil, fmt.Errorf("generate secret mask: %w", err)
	}

	masked := make([]byte, len(data))
	for i := range data {
		masked[i] = data[i] ^ pad[i]
	}

	return &maskedBytes{masked: masked, pad: pad}, nil
}

// reveal returns a fresh plaintext copy. The caller owns it and must wipe
// it after use.
func (m *maskedBytes) reveal() []byte {
	out := make([]byte, len(m.masked))
	for i := range m.masked {
		out[i] = m.masked[i] ^ m.pad[i]
	}

	return out
}

// wipe destroys the secret. The maskedBytes must not be used afterwards.
func (m *maskedBytes) wipe() {
	crypto.Wipe(m.masked)
	crypto.Wipe(m.pad)
}
