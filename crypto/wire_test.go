package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestWireEntry_EncodeParseRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		salt       []byte
		ciphertext []byte
	}{
		{name: "typical entry", salt: bytes.Repeat([]byte{0x11}, 16), ciphertext: []byte("opaque bytes")},
		{name: "empty salt", salt: []byte{}, ciphertext: []byte{0x01}},
		{name: "empty ciphertext", salt: bytes.Repeat([]byte{0x22}, 16), ciphertext: []byte{}},
		{name: "max salt length", salt: bytes.Repeat([]byte{0x33}, 255), ciphertext: []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := encodeWireEntry(tt.salt, tt.ciphertext)
			if err != nil {
				t.Fatalf("encodeWireEntry error: %v", err)
			}
			if raw[0] != protocolVersion {
				t.Fatalf("version byte = %d, want %d", raw[0], protocolVersion)
			}
			if int(raw[1]) != len(tt.salt) {
				t.Fatalf("salt length byte = %d, want %d", raw[1], len(tt.salt))
			}
			if want := 1 + 1 + len(tt.salt) + 4 + len(tt.ciphertext); len(raw) != want {
				t.Fatalf("encoded %d bytes, want %d", len(raw), want)
			}

			entry, err := parseWireEntry(raw)
			if err != nil {
				t.Fatalf("parseWireEntry error: %v", err)
			}
			if !bytes.Equal(entry.contentSalt, tt.salt) {
				t.Fatalf("content salt mismatch")
			}
			if !bytes.Equal(entry.ciphertext, tt.ciphertext) {
				t.Fatalf("ciphertext mismatch")
			}
		})
	}
}

func TestEncodeWireEntry_SaltTooLong(t *testing.T) {
	_, err := encodeWireEntry(bytes.Repeat([]byte{0x44}, 256), []byte("x"))
	if !errors.Is(err, ErrMalformedWireEntry) {
		t.Fatalf("expected ErrMalformedWireEntry, got %v", err)
	}
}

func TestParseWireEntry_VersionCheckedFirst(t *testing.T) {
	// A one-byte buffer with a wrong version: even a buffer too short to
	// parse reports the version mismatch, never a structural error.
	_, err := parseWireEntry([]byte{0x01})
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}

	raw, err := encodeWireEntry(bytes.Repeat([]byte{0x55}, 16), []byte("ct"))
	if err != nil {
		t.Fatalf("encodeWireEntry error: %v", err)
	}
	raw[0] = 0xFF
	if _, err := parseWireEntry(raw); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestParseWireEntry_Malformed(t *testing.T) {
	valid, err := encodeWireEntry(bytes.Repeat([]byte{0x66}, 16), []byte("ciphertext"))
	if err != nil {
		t.Fatalf("encodeWireEntry error: %v", err)
	}

	negativeLength, err := encodeWireEntry([]byte{}, []byte{})
	if err != nil {
		t.Fatalf("encodeWireEntry error: %v", err)
	}
	// Overwrite the length field with 0xFFFFFFFF, an int32 -1.
	copy(negativeLength[2:], []byte{0xFF, 0xFF, 0xFF, 0xFF})

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty buffer", raw: []byte{}},
		{name: "version byte only", raw: []byte{protocolVersion}},
		{name: "salt shorter than declared", raw: []byte{protocolVersion, 16, 0x01, 0x02}},
		{name: "missing length field", raw: []byte{protocolVersion, 2, 0x01, 0x02, 0x00, 0x00}},
		{name: "negative ciphertext length", raw: negativeLength},
		{name: "ciphertext shorter than declared", raw: valid[:len(valid)-4]},
		{name: "trailing bytes", raw: append(append([]byte{}, valid...), 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseWireEntry(tt.raw); !errors.Is(err, ErrMalformedWireEntry) {
				t.Fatalf("expected ErrMalformedWireEntry, got %v", err)
			}
		})
	}
}

func TestParseWireEntry_ReturnsCopies(t *testing.T) {
	raw, err := encodeWireEntry(bytes.Repeat([]byte{0x77}, 4), []byte{0xA0, 0xA1, 0xA2})
	if err != nil {
		t.Fatalf("encodeWireEntry error: %v", err)
	}
	original := make([]byte, len(raw))
	copy(original, raw)

	entry, err := parseWireEntry(raw)
	if err != nil {
		t.Fatalf("parseWireEntry error: %v", err)
	}

	for i := range entry.contentSalt {
		entry.contentSalt[i] = 0xFF
	}
	for i := range entry.ciphertext {
		entry.ciphertext[i] = 0xFF
	}

	if !bytes.Equal(raw, original) {
		t.Fatalf("mutating parsed fields changed the source buffer")
	}
}
