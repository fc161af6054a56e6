// Package catalog holds the in-memory directory of saved extraction results.
// A Store owns an immutable Snapshot that is swapped wholesale on refresh;
// readers keep whatever snapshot they grabbed and never observe a partial
// update.
package catalog

import (
	"context"
	"sync"
	"time"
)

// Entry is one listed result file. ID is unique within a snapshot and stable
// for the lifetime of the underlying file.
type Entry struct {
	ID         string
	Domain     string
	Filename   string
	SourceURL  string
	CapturedAt time.Time
	Kind       string
}

// Direction selects a neighbour during ordered traversal.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Lister enumerates the available result files. Implementations decide the
// ordering; the catalog preserves it verbatim.
type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}

// Snapshot is an immutable view of the catalog at one point in time.
type Snapshot struct {
	entries  []Entry
	byDomain map[string]int
}

// NewSnapshot copies entries into a fresh snapshot. The first occurrence of
// a domain wins for domain lookups.
func NewSnapshot(entries []Entry) *Snapshot {
	snap := &Snapshot{
		entries:  make([]Entry, len(entries)),
		byDomain: make(map[string]int, len(entries)),
	}
	copy(snap.entries, entries)
	for i, entry := range snap.entries {
		if _, ok := snap.byDomain[entry.Domain]; !ok {
			snap.byDomain[entry.Domain] = i
		}
	}
	return snap
}

// Entries returns a copy of the ordered entry list.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// At returns the entry at index i, or false when i is out of range.
func (s *Snapshot) At(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// FindByDomain returns the entry for domain, or false when absent.
func (s *Snapshot) FindByDomain(domain string) (Entry, bool) {
	i, ok := s.byDomain[domain]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// IndexOf returns the position of domain in the ordered list, or -1.
func (s *Snapshot) IndexOf(domain string) int {
	i, ok := s.byDomain[domain]
	if !ok {
		return -1
	}
	return i
}

// Adjacent returns the neighbour of domain in the given direction, wrapping
// at both ends. It returns false only when the snapshot is empty. A domain
// the snapshot does not contain steps onto the nearest edge: Next lands on
// the first entry, Prev on the last.
func (s *Snapshot) Adjacent(domain string, dir Direction) (Entry, bool) {
	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}
	idx, ok := s.byDomain[domain]
	if !ok {
		if dir == Next {
			idx = n - 1
		} else {
			idx = 0
		}
	}
	idx = (idx + int(dir) + n) % n
	return s.entries[idx], true
}

// Store owns the current snapshot.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore returns a store holding an empty snapshot.
func NewStore() *Store {
	return &Store{snap: NewSnapshot(nil)}
}

// Snapshot returns the current snapshot.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// Replace installs a new snapshot built from entries and returns it.
func (st *Store) Replace(entries []Entry) *Snapshot {
	snap := NewSnapshot(entries)
	st.mu.Lock()
	st.snap = snap
	st.mu.Unlock()
	return snap
}

// Refresh re-lists via lister and replaces the snapshot. When the lister
// fails the store degrades to an empty snapshot and reports the error; the
// viewer keeps running against a bare catalog rather than stale data.
func (st *Store) Refresh(ctx context.Context, lister Lister) (*Snapshot, error) {
	entries, err := lister.List(ctx)
	if err != nil {
		return st.Replace(nil), err
	}
	return st.Replace(entries), nil
}
