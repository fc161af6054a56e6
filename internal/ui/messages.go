package ui

import "github.com/RolfLobo/dembrandt/internal/backend"

// catalogRefreshedMsg reports a completed catalog refresh. origin says what
// triggered it ("startup" or "user") so the handler can decide whether to
// announce the outcome.
type catalogRefreshedMsg struct {
	origin string
	count  int
	err    error
}

// backendEventMsg carries one change hint from the directory watcher.
type backendEventMsg struct {
	event backend.Event
}

// backendClosedMsg reports that the watcher channel has closed.
type backendClosedMsg struct{}
