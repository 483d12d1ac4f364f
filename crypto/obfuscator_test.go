package crypto

import (
	"bytes"
	"testing"
)

func TestHKDFXorObfuscator_Inverse(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "small buffer", size: 64},
		{name: "one byte", size: 1},
		{name: "single expansion boundary", size: hkdfExpandMax},
		{name: "crosses expansion boundary", size: hkdfExpandMax + 1},
		{name: "several expansions", size: 3*hkdfExpandMax + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := make([]byte, tt.size)
			for i := range original {
				original[i] = byte(i * 7)
			}
			data := make([]byte, len(original))
			copy(data, original)

			obfuscator := NewHKDFXorObfuscatorFactory().CreateObfuscator([]byte("obfuscation key"))

			if err := obfuscator.Obfuscate(data); err != nil {
				t.Fatalf("Obfuscate error: %v", err)
			}
			if bytes.Equal(data, original) {
				t.Fatalf("Obfuscate left the buffer unchanged")
			}

			if err := obfuscator.Deobfuscate(data); err != nil {
				t.Fatalf("Deobfuscate error: %v", err)
			}
			if !bytes.Equal(data, original) {
				t.Fatalf("Deobfuscate did not restore the original buffer")
			}
		})
	}
}

func TestHKDFXorObfuscator_EmptyBuffer(t *testing.T) {
	obfuscator := NewHKDFXorObfuscatorFactory().CreateObfuscator([]byte("key"))
	if err := obfuscator.Obfuscate([]byte{}); err != nil {
		t.Fatalf("Obfuscate error on empty buffer: %v", err)
	}
}

func TestHKDFXorObfuscator_Deterministic(t *testing.T) {
	factory := NewHKDFXorObfuscatorFactory()

	a := []byte("the same plain bytes")
	b := make([]byte, len(a))
	copy(b, a)

	if err := factory.CreateObfuscator([]byte("key")).Obfuscate(a); err != nil {
		t.Fatalf("Obfuscate error: %v", err)
	}
	if err := factory.CreateObfuscator([]byte("key")).Obfuscate(b); err != nil {
		t.Fatalf("Obfuscate error: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Fatalf("same key and data produced different masks")
	}
}

func TestHKDFXorObfuscator_KeySeparation(t *testing.T) {
	factory := NewHKDFXorObfuscatorFactory()

	a := []byte("the same plain bytes")
	b := make([]byte, len(a))
	copy(b, a)

	if err := factory.CreateObfuscator([]byte("key one")).Obfuscate(a); err != nil {
		t.Fatalf("Obfuscate error: %v", err)
	}
	if err := factory.CreateObfuscator([]byte("key two")).Obfuscate(b); err != nil {
		t.Fatalf("Obfuscate error: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Fatalf("different keys produced the same mask")
	}
}

func TestHKDFXorObfuscator_ClearKeyWipes(t *testing.T) {
	key := []byte("wipe me after use")
	obfuscator := NewHKDFXorObfuscatorFactory().CreateObfuscator(key)

	if err := obfuscator.Obfuscate(make([]byte, 8)); err != nil {
		t.Fatalf("Obfuscate error: %v", err)
	}
	obfuscator.ClearKey()

	if !bytes.Equal(key, make([]byte, len(key))) {
		t.Fatalf("ClearKey left key material in the retained slice")
	}
}
