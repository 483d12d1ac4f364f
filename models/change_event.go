package models

// ChangeKind identifies the kind of mutation a [ChangeEvent] describes.
type ChangeKind int

const (
	// ChangePut indicates that a key was created or its value replaced.
	ChangePut ChangeKind = iota + 1

	// ChangeRemove indicates that a key was deleted.
	ChangeRemove
)

// String returns a short human-readable name for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangePut:
		return "put"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ChangeEvent describes a single mutation of a key-value store entry.
//
// Events emitted by a raw store carry the storage key as persisted. Events
// emitted by a secure vault carry the plaintext logical key instead, because
// the vault is the only layer that still knows it at mutation time.
type ChangeEvent struct {
	// Key is the key that changed.
	Key string

	// Kind is the mutation type.
	Kind ChangeKind
}

// ChangeListener receives change events from a store or vault. Listeners are
// invoked synchronously from the mutating call and must not block.
type ChangeListener func(event ChangeEvent)
