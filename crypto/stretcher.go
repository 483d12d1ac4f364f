package crypto

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// argon2KeyStretcher is the Argon2id implementation of
// [KeyStretchingFunction], using the parameters recommended by OWASP
// (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
type argon2KeyStretcher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2KeyStretcher constructs the default, memory-hard
// [KeyStretchingFunction].
func NewArgon2KeyStretcher() KeyStretchingFunction {
	return &argon2KeyStretcher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
	}
}

// Stretch implements [KeyStretchingFunction].
func (s *argon2KeyStretcher) Stretch(salt, password []byte, outLen int) ([]byte, error) {
	return argon2.IDKey(password, salt, s.time, s.memory, s.threads, uint32(outLen)), nil
}

// pbkdf2KeyStretcher is the PBKDF2 (HMAC-SHA-512) implementation of
// [KeyStretchingFunction], for deployments that must stick to a
// NIST-listed construction.
type pbkdf2KeyStretcher struct {
	iterations int
}

// NewPBKDF2KeyStretcher constructs a CPU-hard [KeyStretchingFunction]
// running 20 000 PBKDF2 iterations.
func NewPBKDF2KeyStretcher() KeyStretchingFunction {
	return &pbkdf2KeyStretcher{iterations: 20_000}
}

// Stretch implements [KeyStretchingFunction].
func (s *pbkdf2KeyStretcher) Stretch(salt, password []byte, outLen int) ([]byte, error) {
	return pbkdf2.Key(password, salt, s.iterations, outLen, sha512.New), nil
}

// fastKeyStretcher derives key material with a single HKDF pass. It is
// cheap, which violates the expensive-on-purpose contract of
// [KeyStretchingFunction]; use it in tests and benchmarks where the real
// stretchers would dominate the runtime, never for real password material.
type fastKeyStretcher struct{}

// NewFastKeyStretcher constructs the test-grade [KeyStretchingFunction].
func NewFastKeyStretcher() KeyStretchingFunction {
	return fastKeyStretcher{}
}

// Stretch implements [KeyStretchingFunction].
func (fastKeyStretcher) Stretch(salt, password []byte, outLen int) ([]byte, error) {
	out := make([]byte, outLen)
	if _, err := io.ReadFull(hkdf.New(sha512.New, password, salt, []byte("fast key stretcher")), out); err != nil {
		return nil, err
	}

	return out, nil
}
