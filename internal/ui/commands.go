package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/logging/events"
)

// refreshCmd re-lists the source and replaces the catalog snapshot. The
// listing runs off the update goroutine; the store swap is atomic.
func (m *Model) refreshCmd(origin string) tea.Cmd {
	store := m.catalog
	src := m.src
	return func() tea.Msg {
		events.Catalog.RefreshStart(origin)
		snap, err := store.Refresh(context.Background(), src)
		return catalogRefreshedMsg{origin: origin, count: snap.Len(), err: err}
	}
}

// waitForBackend blocks on the watcher's hint channel and re-arms after
// every delivery.
func (m *Model) waitForBackend() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return backendClosedMsg{}
		}
		return backendEventMsg{event: ev}
	}
}
