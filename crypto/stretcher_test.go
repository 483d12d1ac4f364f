package crypto

import (
	"bytes"
	"testing"
)

func TestKeyStretchers_Properties(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)
	password := []byte("correct horse battery staple")

	stretchers := []struct {
		name      string
		stretcher KeyStretchingFunction
	}{
		{name: "argon2id", stretcher: NewArgon2KeyStretcher()},
		{name: "pbkdf2", stretcher: NewPBKDF2KeyStretcher()},
		{name: "fast", stretcher: NewFastKeyStretcher()},
	}

	for _, tt := range stretchers {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.stretcher.Stretch(salt, password, 32)
			if err != nil {
				t.Fatalf("Stretch error: %v", err)
			}
			if len(first) != 32 {
				t.Fatalf("stretched to %d bytes, want 32", len(first))
			}

			second, err := tt.stretcher.Stretch(salt, password, 32)
			if err != nil {
				t.Fatalf("Stretch error: %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Fatalf("expected deterministic output for identical inputs")
			}

			otherSalt, err := tt.stretcher.Stretch(bytes.Repeat([]byte{0xCD}, 16), password, 32)
			if err != nil {
				t.Fatalf("Stretch error: %v", err)
			}
			if bytes.Equal(first, otherSalt) {
				t.Fatalf("expected a different salt to change the output")
			}

			otherPassword, err := tt.stretcher.Stretch(salt, []byte("incorrect horse"), 32)
			if err != nil {
				t.Fatalf("Stretch error: %v", err)
			}
			if bytes.Equal(first, otherPassword) {
				t.Fatalf("expected a different password to change the output")
			}

			short, err := tt.stretcher.Stretch(salt, password, 16)
			if err != nil {
				t.Fatalf("Stretch error: %v", err)
			}
			if len(short) != 16 {
				t.Fatalf("stretched to %d bytes, want 16", len(short))
			}
		})
	}
}

func TestKeyStretchers_DistinctConstructions(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)
	password := []byte("password")

	argon, err := NewArgon2KeyStretcher().Stretch(salt, password, 32)
	if err != nil {
		t.Fatalf("Stretch error: %v", err)
	}
	pbkdf, err := NewPBKDF2KeyStretcher().Stretch(salt, password, 32)
	if err != nil {
		t.Fatalf("Stretch error: %v", err)
	}

	if bytes.Equal(argon, pbkdf) {
		t.Fatalf("two different constructions agreed on the output")
	}
}
