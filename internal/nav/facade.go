package nav

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/catalog"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
)

// Facade is the compact navigation surface the input layer drives: go
// home, open an entry, or step to an ordered neighbour.
type Facade struct {
	coord *Coordinator
	cat   *catalog.Store
}

// NewFacade returns a facade over coord and cat.
func NewFacade(coord *Coordinator, cat *catalog.Store) *Facade {
	return &Facade{coord: coord, cat: cat}
}

// GoHome clears the current view and moves the location home.
func (f *Facade) GoHome() tea.Cmd {
	return f.coord.GoHome()
}

// OpenEntry navigates to entry.
func (f *Facade) OpenEntry(entry catalog.Entry) tea.Cmd {
	return f.coord.OpenEntry(entry)
}

// Step opens the catalog neighbour of the current selection, wrapping at
// both ends. With an empty catalog it does nothing.
func (f *Facade) Step(dir catalog.Direction) tea.Cmd {
	domain := ""
	if entry, ok := f.coord.Selection(); ok {
		domain = entry.Domain
	}
	next, ok := f.cat.Snapshot().Adjacent(domain, dir)
	if !ok {
		return nil
	}
	events.Nav.Step(dirName(dir), next.Domain)
	return f.coord.OpenEntry(next)
}

func dirName(dir catalog.Direction) string {
	if dir == catalog.Next {
		return "next"
	}
	return "prev"
}
