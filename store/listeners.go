package store

import (
	"sync"

	"github.com/MKhiriev/go-secure-kv/models"
)

// ListenerHub tracks the change listeners of one event source and
// dispatches events to them. Dispatch is synchronous and happens outside
// the lock on a snapshot of the listener set, so a listener may subscribe
// or cancel from inside its own callback. Every backend in this package
// embeds one; the vault reuses it for its own logical-key events.
type ListenerHub struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]models.ChangeListener
}

func NewListenerHub() *ListenerHub {
	return &ListenerHub{listeners: make(map[uint64]models.ChangeListener)}
}

// Subscribe registers listener and returns its cancel function. Cancel is
// idempotent.
func (h *ListenerHub) Subscribe(listener models.ChangeListener) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = listener
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// Notify delivers event to every listener registered at the time of the
// call.
func (h *ListenerHub) Notify(event models.ChangeEvent) {
	h.mu.RLock()
	snapshot := make([]models.ChangeListener, 0, len(h.listeners))
	for _, listener := range h.listeners {
		snapshot = append(snapshot, listener)
	}
	h.mu.RUnlock()

	for _, listener := range snapshot {
		listener(event)
	}
}
