package crypto

import (
	"encoding/binary"
	"fmt"
	"math"
)

// protocolVersion is the only wire format version this package reads or
// writes.
const protocolVersion byte = 0

// wireEntry is the parsed form of one persisted entry. On the wire:
//
//	version           1 byte  (currently 0)
//	contentSaltLength 1 byte  (N)
//	contentSalt       N bytes
//	ciphertextLength  4 bytes, big-endian int32 (M)
//	ciphertext        M bytes (obfuscated)
type wireEntry struct {
	contentSalt []byte
	ciphertext  []byte
}

// encodeWireEntry serializes a content salt and an (already obfuscated)
// ciphertext into the wire layout above.
func encodeWireEntry(contentSalt, ciphertext []byte) ([]byte, error) {
	if len(contentSalt) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: content salt of %d bytes does not fit the length byte", ErrMalformedWireEntry, len(contentSalt))
	}
	if len(ciphertext) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes does not fit the length field", ErrMalformedWireEntry, len(ciphertext))
	}

	out := make([]byte, 0, 1+1+len(contentSalt)+4+len(ciphertext))
	out = append(out, protocolVersion, byte(len(contentSalt)))
	out = append(out, contentSalt...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(ciphertext)))
	out = append(out, ciphertext...)

	return out, nil
}

// parseWireEntry validates raw and returns copies of the salt and the
// ciphertext, so later in-place transforms never touch the caller's buffer.
//
// The version byte is checked first: an unknown version fails with
// [ErrVersionMismatch] regardless of what follows it. Every other
// structural defect (short buffer, negative length, length not matching the
// remaining bytes) fails with [ErrMalformedWireEntry].
func parseWireEntry(raw []byte) (wireEntry, error) {
	if len(raw) == 0 {
		return wireEntry{}, fmt.Errorf("%w: empty buffer", ErrMalformedWireEntry)
	}
	if raw[0] != protocolVersion {
		return wireEntry{}, fmt.Errorf("%w: got version %d, supported %d", ErrVersionMismatch, raw[0], protocolVersion)
	}
	if len(raw) < 2 {
		return wireEntry{}, fmt.Errorf("%w: %d bytes is too short", ErrMalformedWireEntry, len(raw))
	}

	saltLength := int(raw[1])
	rest := raw[2:]
	if len(rest) < saltLength+4 {
		return wireEntry{}, fmt.Errorf("%w: buffer shorter than declared content salt", ErrMalformedWireEntry)
	}

	ciphertextLength := int(int32(binary.BigEndian.Uint32(rest[saltLength : saltLength+4])))
	body := rest[saltLength+4:]
	if ciphertextLength < 0 || ciphertextLength != len(body) {
		return wireEntry{}, fmt.Errorf("%w: declared ciphertext length %d, got %d bytes", ErrMalformedWireEntry, ciphertextLength, len(body))
	}

	entry := wireEntry{
		contentSalt: make([]byte, saltLength),
		ciphertext:  make([]byte, ciphertextLength),
	}
	copy(entry.contentSalt, rest[:saltLength])
	copy(entry.ciphertext, body)

	return entry, nil
}
