package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	cases := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"json write", fsnotify.Event{Name: "a.json", Op: fsnotify.Write}, true},
		{"json create", fsnotify.Event{Name: "a.json", Op: fsnotify.Create}, true},
		{"json remove", fsnotify.Event{Name: "a.json", Op: fsnotify.Remove}, true},
		{"json chmod", fsnotify.Event{Name: "a.json", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		if got := relevant(tc.ev); got != tc.want {
			t.Fatalf("%s: relevant = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWatcherEmitsDebouncedHint(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	// A burst of writes should collapse into a single hint.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, "alpha.json"), []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	select {
	case ev := <-w.Events():
		if ev.Err != nil {
			t.Fatalf("unexpected watcher error: %v", ev.Err)
		}
		if filepath.Base(ev.Path) != "alpha.json" {
			t.Fatalf("unexpected hint path %q", ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no hint within timeout")
	}

	// No further hint should be pending once the burst has been reported.
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected extra hint: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected hint for non-result file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopClosesEventsChannel(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}

	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected a closed channel, got an event")
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel still open after Stop")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "absent"), 0); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
