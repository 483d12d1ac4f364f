package crypto

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfExpandMax is the largest output a single HKDF-SHA-512 expansion can
// produce: 255 blocks of the hash length (RFC 5869).
const hkdfExpandMax = 255 * sha512.Size

// obfuscationPadLabel prefixes the per-block expansion info; the block
// counter is appended so each block of the pad is independent.
const obfuscationPadLabel = "obfuscation pad"

// hkdfXorObfuscator implements [DataObfuscator] by XOR-ing the buffer with
// a pad expanded from the key via HKDF-SHA-512. XOR is its own inverse, so
// Obfuscate and Deobfuscate run the same transform. The pad depends only on
// the key and the byte position, keeping the transform deterministic.
type hkdfXorObfuscator struct {
	key []byte
}

type hkdfXorObfuscatorFactory struct{}

// NewHKDFXorObfuscatorFactory returns the default [ObfuscatorFactory],
// producing HKDF-XOR obfuscators.
func NewHKDFXorObfuscatorFactory() ObfuscatorFactory {
	return hkdfXorObfuscatorFactory{}
}

// CreateObfuscator implements [ObfuscatorFactory]. The returned obfuscator
// retains key; ClearKey wipes it in place.
func (hkdfXorObfuscatorFactory) CreateObfuscator(key []byte) DataObfuscator {
	return &hkdfXorObfuscator{key: key}
}

// Obfuscate implements [DataObfuscator].
func (o *hkdfXorObfuscator) Obfuscate(data []byte) error {
	return o.xorPad(data)
}

// Deobfuscate implements [DataObfuscator].
func (o *hkdfXorObfuscator) Deobfuscate(data []byte) error {
	return o.xorPad(data)
}

// ClearKey implements [DataObfuscator].
func (o *hkdfXorObfuscator) ClearKey() {
	Wipe(o.key)
}

// xorPad masks data in place. A single HKDF expansion is capped at
// hkdfExpandMax bytes, so longer buffers consume several expansions, each
// with the block counter baked into the info parameter.
func (o *hkdfXorObfuscator) xorPad(data []byte) error {
	prk := hkdf.Extract(sha512.New, o.key, nil)
	defer Wipe(prk)

	pad := make([]byte, min(len(data), hkdfExpandMax))
	defer Wipe(pad)

	for offset, block := 0, uint32(0); offset < len(data); block++ {
		n := min(len(data)-offset, hkdfExpandMax)

		info := binary.BigEndian.AppendUint32([]byte(obfuscationPadLabel), block)
		if _, err := io.ReadFull(hkdf.Expand(sha512.New, prk, info), pad[:n]); err != nil {
			return fmt.Errorf("expand obfuscation pad: %w", err)
		}

		for i := 0; i < n; i++ {
			data[offset+i] ^= pad[i]
		}
		offset += n
	}

	return nil
}
