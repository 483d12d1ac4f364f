package crypto

// Wipe overwrites b with zeros. Fingerprint copies, derived keys, and
// stretched passwords must be wiped before the operation that owns them
// returns, on success and failure paths alike; deferring a Wipe right after
// the buffer is obtained covers both.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
