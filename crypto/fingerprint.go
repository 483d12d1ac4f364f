package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

// hostFingerprintLabel domain-separates the host identity condensation
// from every other HKDF use in this package.
const hostFingerprintLabel = "host fingerprint"

// fingerprintData implements [EncryptionFingerprint] for a caller-supplied
// byte vector. The bytes are XOR-masked in memory with a random pad so the
// raw fingerprint never sits in the heap in the clear; Bytes reassembles a
// fresh copy on every call.
type fingerprintData struct {
	masked []byte
	pad    []byte
}

// NewFingerprint wraps data as an [EncryptionFingerprint]. The input is
// copied (in masked form), so the caller may wipe its own buffer right
// after the call.
func NewFingerprint(data []byte) (EncryptionFingerprint, error) {
	if len(data) == 0 {
		return nil, errors.New("fingerprint data must not be empty")
	}

	pad := make([]byte, len(data))
	if _, err := io.ReadFull(rand.Reader, pad); err != nil {
		return nil, fmt.Errorf("generate fingerprint mask: %w", err)
	}

	masked := make([]byte, len(data))
	for i := range data {
		masked[i] = data[i] ^ pad[i]
	}

	return &fingerprintData{masked: masked, pad: pad}, nil
}

// Bytes implements [EncryptionFingerprint]. The returned slice is a fresh
// copy owned by the caller, who must wipe it after use.
func (f *fingerprintData) Bytes() ([]byte, error) {
	out := make([]byte, len(f.masked))
	for i := range f.masked {
		out[i] = f.masked[i] ^ f.pad[i]
	}

	return out, nil
}

// NewHostFingerprint builds an [EncryptionFingerprint] from stable host
// identity (hostname, OS, architecture, numeric user id) plus any
// additional caller-supplied binding data, condensed through HKDF into 32
// bytes. The result is deterministic for the same host and inputs; entries
// encrypted with it stop decrypting once any of those change.
func NewHostFingerprint(additional ...[]byte) (EncryptionFingerprint, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("read hostname: %w", err)
	}

	ikm := make([]byte, 0, 64)
	ikm = append(ikm, hostname...)
	ikm = append(ikm, runtime.GOOS...)
	ikm = append(ikm, runtime.GOARCH...)
	ikm = append(ikm, strconv.Itoa(os.Getuid())...)
	for _, extra := range additional {
		ikm = append(ikm, extra...)
	}
	defer Wipe(ikm)

	condensed := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, []byte(hostFingerprintLabel)), condensed); err != nil {
		return nil, fmt.Errorf("condense fingerprint: %w", err)
	}
	defer Wipe(condensed)

	return NewFingerprint(condensed)
}
