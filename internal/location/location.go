// Package location provides the shared location slot the viewer synchronises
// navigation state through. Every write notifies all subscribers, including
// writes that leave the value unchanged; deduplication is the subscriber's
// concern, not the store's.
package location

import "sync"

// Store is a readable, writable, observable location value.
type Store interface {
	Read() string
	Write(value string)
	// Subscribe registers fn for every subsequent write. The returned
	// function cancels the registration.
	Subscribe(fn func(value string)) (cancel func())
}

// Memory is an in-process Store. Subscribers run synchronously on the
// writer's goroutine, in registration order.
type Memory struct {
	mu      sync.Mutex
	current string
	subs    map[int]func(string)
	order   []int
	nextID  int
}

// NewMemory returns a Memory store holding initial.
func NewMemory(initial string) *Memory {
	return &Memory{current: initial, subs: make(map[int]func(string))}
}

// Read returns the current value.
func (m *Memory) Read() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Write stores value and notifies every subscriber, even when value equals
// the current location.
func (m *Memory) Write(value string) {
	m.mu.Lock()
	m.current = value
	fns := make([]func(string), 0, len(m.order))
	for _, id := range m.order {
		if fn, ok := m.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(value)
	}
}

// Subscribe registers fn and returns its cancel function.
func (m *Memory) Subscribe(fn func(string)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.order = append(m.order, id)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
