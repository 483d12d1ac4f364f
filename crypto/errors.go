package crypto

import "errors"

// Sentinel errors returned by [EncryptionProtocol] operations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrVersionMismatch is returned when a wire entry's version byte does
	// not match the supported protocol version. The entry is unreadable:
	// either it was produced by an incompatible configuration or it was
	// tampered with. The check runs before any cryptographic work.
	ErrVersionMismatch = errors.New("wire entry version mismatch")

	// ErrMalformedWireEntry is returned when a wire entry's buffer is too
	// short or its length fields are inconsistent with the actual buffer
	// size.
	ErrMalformedWireEntry = errors.New("malformed wire entry")

	// ErrCryptoFailure is the single category for every cryptographic
	// failure. Cipher authentication, wrong password, fingerprint source
	// failure, and key stretching failure all collapse into this one
	// sentinel; there are no finer-grained signals to match on.
	ErrCryptoFailure = errors.New("encryption protocol failure")
)
