package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/catalog"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
)

// View is what the dispatcher can observe about the screen. The grid walks
// the visible (possibly filtered) sequence; the selector captures the full
// catalog snapshot at open time.
type View interface {
	VisibleEntries() []catalog.Entry
	CatalogSnapshot() *catalog.Snapshot
	ResultShown() bool
	SelectionDomain() (string, bool)
	TextEntryFocused() bool
}

// Actions is the navigation surface the dispatcher drives.
type Actions interface {
	GoHome() tea.Cmd
	OpenEntry(entry catalog.Entry) tea.Cmd
	Step(dir catalog.Direction) tea.Cmd
}

// Dispatcher holds the per-mode focus state and maps key identities to
// actions.
type Dispatcher struct {
	view    View
	actions Actions

	gridFocus     int
	selectorOpen  bool
	selectorFocus int
	selectorItems []catalog.Entry
}

// NewDispatcher returns a dispatcher observing view and driving actions.
func NewDispatcher(view View, actions Actions) *Dispatcher {
	return &Dispatcher{view: view, actions: actions}
}

// Mode derives the active dispatch mode: an open selector wins, otherwise
// a displayed result means result mode, otherwise the grid.
func (d *Dispatcher) Mode() Mode {
	switch {
	case d.selectorOpen:
		return ModeSelector
	case d.view.ResultShown():
		return ModeResult
	default:
		return ModeGrid
	}
}

// GridFocus returns the grid focus index, clamped to the visible sequence.
func (d *Dispatcher) GridFocus() int {
	return d.clampedGridFocus(len(d.view.VisibleEntries()))
}

// SelectorOpen reports whether the selector overlay is up.
func (d *Dispatcher) SelectorOpen() bool {
	return d.selectorOpen
}

// SelectorFocus returns the selector focus index.
func (d *Dispatcher) SelectorFocus() int {
	return d.selectorFocus
}

// SelectorItems returns the entry list captured when the selector opened.
// A catalog refresh while the selector is up does not change it.
func (d *Dispatcher) SelectorItems() []catalog.Entry {
	return d.selectorItems
}

// Handle maps one key press to an action. Keys are ignored entirely while
// a text entry control has focus.
func (d *Dispatcher) Handle(key string) tea.Cmd {
	if d.view.TextEntryFocused() {
		return nil
	}
	id := Normalize(key)
	if id == None {
		return nil
	}
	mode := d.Mode()
	events.Input.Key(mode.String(), key)
	switch mode {
	case ModeSelector:
		return d.handleSelector(id)
	case ModeResult:
		return d.handleResult(id)
	default:
		return d.handleGrid(id)
	}
}

func (d *Dispatcher) handleGrid(id Identity) tea.Cmd {
	entries := d.view.VisibleEntries()
	n := len(entries)
	if n == 0 {
		return nil
	}
	d.gridFocus = d.clampedGridFocus(n)
	switch id {
	case Retreat:
		d.gridFocus = (d.gridFocus - 1 + n) % n
		events.Input.GridFocus(d.gridFocus)
	case Advance:
		d.gridFocus = (d.gridFocus + 1) % n
		events.Input.GridFocus(d.gridFocus)
	case Confirm, Select:
		return d.actions.OpenEntry(entries[d.gridFocus])
	}
	return nil
}

func (d *Dispatcher) handleResult(id Identity) tea.Cmd {
	switch id {
	case Retreat:
		return d.actions.Step(catalog.Prev)
	case Advance:
		return d.actions.Step(catalog.Next)
	case Home:
		return d.actions.GoHome()
	case Select:
		d.openSelector()
	}
	return nil
}

func (d *Dispatcher) handleSelector(id Identity) tea.Cmd {
	n := len(d.selectorItems)
	switch id {
	case Escape:
		d.closeSelector(false)
	case Retreat:
		if n > 0 {
			d.selectorFocus = (d.selectorFocus - 1 + n) % n
			events.Input.SelectorFocus(d.selectorFocus)
		}
	case Advance:
		if n > 0 {
			d.selectorFocus = (d.selectorFocus + 1) % n
			events.Input.SelectorFocus(d.selectorFocus)
		}
	case Confirm:
		if n == 0 {
			d.closeSelector(false)
			return nil
		}
		entry := d.selectorItems[d.selectorFocus]
		d.closeSelector(true)
		return d.actions.OpenEntry(entry)
	}
	return nil
}

// ResetGridFocus moves the grid focus back to the top, for when the
// visible sequence is rebuilt by a filter change or refresh.
func (d *Dispatcher) ResetGridFocus() {
	d.gridFocus = 0
}

func (d *Dispatcher) openSelector() {
	snap := d.view.CatalogSnapshot()
	d.selectorItems = snap.Entries()
	d.selectorFocus = 0
	if domain, ok := d.view.SelectionDomain(); ok {
		if idx := snap.IndexOf(domain); idx >= 0 {
			d.selectorFocus = idx
		}
	}
	d.selectorOpen = true
	events.Input.SelectorOpen(d.selectorFocus, len(d.selectorItems))
}

func (d *Dispatcher) closeSelector(confirmed bool) {
	d.selectorOpen = false
	d.selectorItems = nil
	d.selectorFocus = 0
	events.Input.SelectorClose(confirmed)
}

func (d *Dispatcher) clampedGridFocus(n int) int {
	if n == 0 {
		return 0
	}
	if d.gridFocus < 0 || d.gridFocus >= n {
		return 0
	}
	return d.gridFocus
}
