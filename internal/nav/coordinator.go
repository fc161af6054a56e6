// Package nav owns what the viewer is looking at: the selected catalog
// entry, the display slot it renders into, and the location value both are
// kept in sync with. All mutation happens on the update goroutine; fetches
// run as commands and report back through a FetchResult message.
package nav

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/artifact"
	"github.com/RolfLobo/dembrandt/internal/catalog"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
	"github.com/RolfLobo/dembrandt/internal/route"
	"github.com/RolfLobo/dembrandt/internal/source"
)

// SlotState describes what the display slot currently holds.
type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotPlaceholder
	SlotLoaded
)

// Slot is the display slot. In the placeholder state only the header
// fields are set; Artifact is present only when loaded.
type Slot struct {
	State      SlotState
	Domain     string
	SourceURL  string
	CapturedAt time.Time
	Artifact   *artifact.Artifact
}

// FetchResult reports a completed artifact fetch back to the coordinator.
// The id ties the result to the selection that launched it; results whose
// selection has moved on are discarded.
type FetchResult struct {
	id            string
	domain        string
	art           *artifact.Artifact
	err           error
	writeLocation bool
}

// Domain returns the domain the fetch was for.
func (r FetchResult) Domain() string { return r.domain }

// Coordinator sequences selection changes, artifact fetches, and location
// writes so rapid navigation can never leave a stale result on screen.
type Coordinator struct {
	catalog *catalog.Store
	fetcher source.Fetcher
	codec   *route.Codec

	slot         Slot
	selected     catalog.Entry
	hasSelection bool
	suppressNext bool
	lastErr      error
}

// NewCoordinator wires a coordinator to its collaborators.
func NewCoordinator(cat *catalog.Store, fetcher source.Fetcher, codec *route.Codec) *Coordinator {
	return &Coordinator{catalog: cat, fetcher: fetcher, codec: codec}
}

// Slot returns the current display slot.
func (c *Coordinator) Slot() Slot {
	return c.slot
}

// Selection returns the selected entry, if any.
func (c *Coordinator) Selection() (catalog.Entry, bool) {
	return c.selected, c.hasSelection
}

// SelectionID returns the selected entry's id, if any.
func (c *Coordinator) SelectionID() (string, bool) {
	if !c.hasSelection {
		return "", false
	}
	return c.selected.ID, true
}

// LastError returns the most recent fetch failure. It is cleared whenever a
// new navigation starts.
func (c *Coordinator) LastError() error {
	return c.lastErr
}

// OpenEntry selects entry, shows its placeholder immediately, and returns
// the command that fetches the artifact. On success the location is updated
// to match.
func (c *Coordinator) OpenEntry(entry catalog.Entry) tea.Cmd {
	events.Nav.Open(entry.Domain)
	return c.open(entry, true)
}

// OpenTarget resolves a decoded location target against the catalog. Home
// clears the slot; a site target fetches its entry without writing the
// location back (the location already holds this value). A domain the
// catalog does not contain falls back to home.
func (c *Coordinator) OpenTarget(target route.Target) tea.Cmd {
	if !target.IsSite() {
		c.clear()
		return nil
	}
	entry, ok := c.catalog.Snapshot().FindByDomain(target.Domain)
	if !ok {
		events.Nav.Unresolved(target.Domain)
		c.clear()
		return nil
	}
	return c.open(entry, false)
}

// GoHome clears the slot and selection and writes the home location. The
// write is marked self-triggered so the resulting change notification does
// not bounce back into another navigation.
func (c *Coordinator) GoHome() tea.Cmd {
	events.Nav.Home()
	c.clear()
	c.suppressNext = true
	c.codec.Write(route.Home())
	return nil
}

// HandleLocation reacts to a location change notification. Self-triggered
// writes consume their one-shot marker and do nothing; a change naming the
// domain already on display is ignored; everything else navigates.
func (c *Coordinator) HandleLocation(target route.Target) tea.Cmd {
	if c.suppressNext {
		c.suppressNext = false
		events.Nav.Suppressed(route.Encode(target))
		return nil
	}
	if target.IsSite() && c.hasSelection && c.selected.Domain == target.Domain && c.slot.State != SlotEmpty {
		return nil
	}
	events.Nav.LocationChange(route.Encode(target))
	return c.OpenTarget(target)
}

// Apply folds a fetch result into the slot. Results for a superseded
// selection are dropped; the slot then still reflects the newest
// navigation, whatever order the fetches finished in.
func (c *Coordinator) Apply(res FetchResult) {
	if !c.hasSelection || res.id != c.selected.ID {
		events.Fetch.Stale(res.domain, c.selected.Domain)
		return
	}
	if res.err != nil {
		c.lastErr = res.err
		events.Fetch.Failed(res.domain, res.err)
		return
	}
	c.slot = Slot{
		State:      SlotLoaded,
		Domain:     res.art.Domain,
		SourceURL:  res.art.SourceURL,
		CapturedAt: res.art.CapturedAt,
		Artifact:   res.art,
	}
	events.Fetch.Loaded(res.domain)
	if res.writeLocation {
		c.suppressNext = true
		c.codec.Write(route.Site(res.domain))
	}
}

func (c *Coordinator) open(entry catalog.Entry, writeLocation bool) tea.Cmd {
	c.selected = entry
	c.hasSelection = true
	c.lastErr = nil
	c.slot = Slot{
		State:      SlotPlaceholder,
		Domain:     entry.Domain,
		SourceURL:  entry.SourceURL,
		CapturedAt: entry.CapturedAt,
	}
	events.Fetch.Start(entry.Domain, entry.Filename)

	id, domain, filename := entry.ID, entry.Domain, entry.Filename
	fetcher := c.fetcher
	return func() tea.Msg {
		art, err := fetcher.Fetch(context.Background(), domain, filename)
		return FetchResult{id: id, domain: domain, art: art, err: err, writeLocation: writeLocation}
	}
}

func (c *Coordinator) clear() {
	c.slot = Slot{}
	c.selected = catalog.Entry{}
	c.hasSelection = false
	c.lastErr = nil
}
