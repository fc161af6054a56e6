// Package backend watches the results directory for changes. The watcher
// only ever produces a hint that something changed on disk; the catalog
// itself is refreshed exclusively by an explicit user action.
package backend

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the event bursts a single extractor run
// produces into one hint.
const DefaultDebounce = 300 * time.Millisecond

// Event is one change hint. Path names the file that triggered it; Err is
// set for watcher failures.
type Event struct {
	Path string
	Err  error
}

// Watcher emits debounced Events for result file changes in one directory.
type Watcher struct {
	fsw      *fsnotify.Watcher
	events   chan Event
	debounce time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher starts watching dir. A debounce of zero falls back to
// DefaultDebounce.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		fsw:      fsw,
		events:   make(chan Event, 16),
		debounce: debounce,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events returns the hint channel. It is closed once the watcher has
// stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
}

// Wait blocks until the watcher goroutine has exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	armed := false
	pending := ""
	for {
		select {
		case <-w.done:
			timer.Stop()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			pending = ev.Name
			if armed {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(w.debounce)
			armed = true
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.emit(Event{Err: err})
		case <-timer.C:
			armed = false
			w.emit(Event{Path: pending})
			pending = ""
		}
	}
}

// emit never blocks; if the UI is not draining hints, dropping one is
// harmless because any hint carries the same meaning.
func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func relevant(ev fsnotify.Event) bool {
	if !strings.HasSuffix(ev.Name, ".json") {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
