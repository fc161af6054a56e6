// Package ui implements the terminal viewer: a grid of saved extraction
// results, a detail view for one site, and a quick-switch selector, all
// kept in sync with a shared location value.
package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/backend"
	"github.com/RolfLobo/dembrandt/internal/catalog"
	"github.com/RolfLobo/dembrandt/internal/input"
	"github.com/RolfLobo/dembrandt/internal/location"
	"github.com/RolfLobo/dembrandt/internal/logging"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
	"github.com/RolfLobo/dembrandt/internal/nav"
	"github.com/RolfLobo/dembrandt/internal/prefs"
	"github.com/RolfLobo/dembrandt/internal/route"
	"github.com/RolfLobo/dembrandt/internal/source"
	"github.com/RolfLobo/dembrandt/internal/theme"
	uistate "github.com/RolfLobo/dembrandt/internal/ui/state"
)

// Options configures a Model.
type Options struct {
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
	Theme           string
	InitialLocation string
}

type msgHandler func(tea.Msg) tea.Cmd

// Model is the bubbletea model for the viewer.
type Model struct {
	src     source.Source
	catalog *catalog.Store
	loc     *location.Memory
	history *location.History
	codec   *route.Codec
	coord   *nav.Coordinator
	facade  *nav.Facade
	disp    *input.Dispatcher
	pstore  *prefs.Store
	watcher *backend.Watcher
	styles  *theme.Styles

	filter         textinput.Model
	spin           spinner.Model
	vp             viewport.Model
	gridWindow     uistate.Window
	selectorWindow uistate.Window

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	// Location changes are appended here by the store subscription (all
	// writes happen on the update goroutine) and drained in finishUpdate.
	pendingLoc []route.Target

	initialNavPending bool
	refreshing        bool
	changeHint        bool
	spinning          bool
	errMsg            string
	infoMsg           string
	infoExpire        time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the viewer model. watcher may be nil when no directory
// watching is available (remote sources, tests).
func NewModel(src source.Source, watcher *backend.Watcher, pstore *prefs.Store, opts Options) *Model {
	styles, ok := theme.ByName(opts.Theme)
	if !ok {
		styles = theme.Dark()
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter sites"
	filter.CharLimit = 64

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	height := opts.Height
	if height <= 0 {
		height = 24
	}

	m := &Model{
		src:               src,
		catalog:           catalog.NewStore(),
		pstore:            pstore,
		watcher:           watcher,
		styles:            styles,
		filter:            filter,
		spin:              spin,
		vp:                viewport.New(width, height),
		width:             width,
		height:            height,
		fixedWidth:        opts.Width > 0,
		fixedHeight:       opts.Height > 0,
		showFooter:        opts.ShowFooter,
		verbose:           opts.Verbose,
		initialNavPending: true,
	}
	m.loc = location.NewMemory(opts.InitialLocation)
	m.history = location.NewHistory(m.loc)
	m.codec = route.NewCodec(m.loc)
	m.coord = nav.NewCoordinator(m.catalog, src, m.codec)
	m.facade = nav.NewFacade(m.coord, m.catalog)
	m.disp = input.NewDispatcher(m, m.facade)
	m.codec.Subscribe(func(target route.Target) {
		m.pendingLoc = append(m.pendingLoc, target)
	})
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}): func(msg tea.Msg) tea.Cmd {
			return m.handleKeyMsg(msg.(tea.KeyMsg))
		},
		reflect.TypeOf(tea.WindowSizeMsg{}): func(msg tea.Msg) tea.Cmd {
			return m.handleWindowSizeMsg(msg.(tea.WindowSizeMsg))
		},
		reflect.TypeOf(nav.FetchResult{}): func(msg tea.Msg) tea.Cmd {
			return m.handleFetchResult(msg.(nav.FetchResult))
		},
		reflect.TypeOf(catalogRefreshedMsg{}): func(msg tea.Msg) tea.Cmd {
			return m.handleCatalogRefreshed(msg.(catalogRefreshedMsg))
		},
		reflect.TypeOf(backendEventMsg{}): func(msg tea.Msg) tea.Cmd {
			return m.handleBackendEvent(msg.(backendEventMsg))
		},
		reflect.TypeOf(backendClosedMsg{}): func(tea.Msg) tea.Cmd {
			return nil
		},
		reflect.TypeOf(spinner.TickMsg{}): func(msg tea.Msg) tea.Cmd {
			return m.handleSpinnerTick(msg.(spinner.TickMsg))
		},
	}
}

// Init kicks off the startup catalog load and the watcher listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshCmd("startup")}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForBackend())
	}
	return tea.Batch(cmds...)
}

// Update dispatches messages through the handler registry.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return m.finishUpdate(handler(msg))
	}
	return m.finishUpdate(nil)
}

// finishUpdate drains queued location notifications and arms the loading
// spinner. Draining here keeps ordering: a self-triggered write is consumed
// before any later message can observe the marker.
func (m *Model) finishUpdate(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{cmd}
	for len(m.pendingLoc) > 0 {
		target := m.pendingLoc[0]
		m.pendingLoc = m.pendingLoc[1:]
		m.savePrefs()
		navCmd := m.coord.HandleLocation(target)
		if navCmd == nil && target.IsSite() {
			if _, ok := m.coord.Selection(); !ok {
				m.setInfo(fmt.Sprintf("no saved result for %s", target.Domain))
			}
		}
		cmds = append(cmds, navCmd)
	}
	if m.coord.Slot().State == nav.SlotPlaceholder && m.coord.LastError() == nil && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	if !m.fixedWidth && msg.Width > 0 {
		m.width = msg.Width
	}
	if !m.fixedHeight && msg.Height > 0 {
		m.height = msg.Height
	}
	m.resizeViewport()
	return nil
}

func (m *Model) handleFetchResult(res nav.FetchResult) tea.Cmd {
	m.coord.Apply(res)
	if m.coord.Slot().State == nav.SlotLoaded {
		m.rebuildResult()
	}
	return nil
}

func (m *Model) handleCatalogRefreshed(msg catalogRefreshedMsg) tea.Cmd {
	m.refreshing = false
	if msg.err != nil {
		events.Catalog.RefreshFailed(msg.err)
		logging.Error(msg.err)
		m.errMsg = fmt.Sprintf("catalog unavailable: %v", msg.err)
	} else {
		events.Catalog.Refreshed(msg.count)
		m.errMsg = ""
		m.changeHint = false
		if msg.origin == "user" {
			m.setInfo(fmt.Sprintf("catalog refreshed: %d sites", msg.count))
		}
	}
	var cmd tea.Cmd
	if m.initialNavPending {
		m.initialNavPending = false
		target := m.codec.Current()
		cmd = m.coord.OpenTarget(target)
		if cmd == nil && target.IsSite() {
			m.setInfo(fmt.Sprintf("no saved result for %s", target.Domain))
		}
	}
	return cmd
}

func (m *Model) handleBackendEvent(msg backendEventMsg) tea.Cmd {
	if msg.event.Err != nil {
		logging.Error(msg.event.Err)
	} else {
		events.Catalog.ChangeHint(msg.event.Path)
		m.changeHint = true
	}
	return m.waitForBackend()
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) tea.Cmd {
	if m.coord.Slot().State != nav.SlotPlaceholder || m.coord.LastError() != nil {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return cmd
}

func (m *Model) savePrefs() {
	if m.pstore == nil {
		return
	}
	if err := m.pstore.Save(prefs.Prefs{Theme: m.styles.Name, LastLocation: m.loc.Read()}); err != nil {
		logging.Error(err)
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// VisibleEntries is the grid sequence: the catalog filtered by the current
// query, in catalog order.
func (m *Model) VisibleEntries() []catalog.Entry {
	return uistate.FilterEntries(m.catalog.Snapshot().Entries(), m.filter.Value())
}

// CatalogSnapshot exposes the full snapshot for the selector.
func (m *Model) CatalogSnapshot() *catalog.Snapshot {
	return m.catalog.Snapshot()
}

// ResultShown reports whether the display slot holds anything.
func (m *Model) ResultShown() bool {
	return m.coord.Slot().State != nav.SlotEmpty
}

// SelectionDomain names the domain currently selected.
func (m *Model) SelectionDomain() (string, bool) {
	entry, ok := m.coord.Selection()
	return entry.Domain, ok
}

// TextEntryFocused reports whether the filter input is capturing keys.
func (m *Model) TextEntryFocused() bool {
	return m.filter.Focused()
}
