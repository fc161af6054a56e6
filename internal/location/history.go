package location

import "sync"

// History layers back/forward traversal over a Store. It records every
// distinct location the store passes through; moving through the recorded
// list writes the remembered value back to the store, which notifies
// subscribers exactly like any external location change.
type History struct {
	mu         sync.Mutex
	store      Store
	entries    []string
	pos        int
	traversing bool
	cancel     func()
}

// NewHistory wraps store, seeding the record with its current value.
func NewHistory(store Store) *History {
	h := &History{store: store, entries: []string{store.Read()}}
	h.cancel = store.Subscribe(h.record)
	return h
}

func (h *History) record(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.traversing {
		// This change is our own Back/Forward write; don't re-record it.
		h.traversing = false
		return
	}
	if h.entries[h.pos] == value {
		return
	}
	// A new navigation discards any forward branch.
	h.entries = append(h.entries[:h.pos+1], value)
	h.pos = len(h.entries) - 1
}

// Back moves one step towards the oldest recorded location. It reports
// whether a move happened.
func (h *History) Back() bool {
	h.mu.Lock()
	if h.pos == 0 {
		h.mu.Unlock()
		return false
	}
	h.pos--
	h.traversing = true
	value := h.entries[h.pos]
	h.mu.Unlock()
	h.store.Write(value)
	return true
}

// Forward moves one step towards the newest recorded location. It reports
// whether a move happened.
func (h *History) Forward() bool {
	h.mu.Lock()
	if h.pos >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.pos++
	h.traversing = true
	value := h.entries[h.pos]
	h.mu.Unlock()
	h.store.Write(value)
	return true
}

// Len reports how many locations are recorded.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Close cancels the store subscription.
func (h *History) Close() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}
