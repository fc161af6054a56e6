package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests. It
// runs every returned command synchronously, unpacking batches, so a test
// observes the model exactly one settled state at a time.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Start runs the model's Init commands, completing the startup refresh and
// any initial navigation before the first Send.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendKey feeds a single key press, as the terminal would deliver it.
func (h *Harness) SendKey(key string) {
	switch key {
	case "enter":
		h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.Send(tea.KeyMsg{Type: tea.KeyEscape})
	case "up":
		h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "left":
		h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		h.Send(tea.KeyMsg{Type: tea.KeyRight})
	case "pgup":
		h.Send(tea.KeyMsg{Type: tea.KeyPgUp})
	case "pgdown":
		h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	case "ctrl+c":
		h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			h.processCmd(sub)
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		h.quit = true
		return
	}
	mdl, next := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(next)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quit reports whether a processed command requested shutdown.
func (h *Harness) Quit() bool {
	return h.quit
}
