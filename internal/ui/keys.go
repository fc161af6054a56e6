package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RolfLobo/dembrandt/internal/input"
	"github.com/RolfLobo/dembrandt/internal/logging/events"
	"github.com/RolfLobo/dembrandt/internal/theme"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.filter.Focused() {
		return m.handleFilterKey(msg, key)
	}

	switch key {
	case "ctrl+c", "q":
		m.savePrefs()
		return tea.Quit
	case "/":
		if m.disp.Mode() == input.ModeGrid {
			m.filter.Focus()
			return textinput.Blink
		}
		return nil
	case "r":
		m.refreshing = true
		return m.refreshCmd("user")
	case "t":
		next := theme.NextName(m.styles.Name)
		if styles, ok := theme.ByName(next); ok {
			m.styles = styles
		}
		events.Theme.Switch(next)
		m.setInfo("theme: " + next)
		m.savePrefs()
		return nil
	case "[":
		events.Nav.HistoryBack(m.history.Back())
		return nil
	case "]":
		events.Nav.HistoryForward(m.history.Forward())
		return nil
	case "pgup", "pgdown", "u", "d":
		m.scrollResult(key)
		return nil
	}
	return m.disp.Handle(key)
}

// handleFilterKey feeds keys into the filter input while it has focus.
// Escape abandons the query, enter keeps it and returns key handling to
// the grid.
func (m *Model) handleFilterKey(msg tea.KeyMsg, key string) tea.Cmd {
	switch key {
	case "ctrl+c":
		m.savePrefs()
		return tea.Quit
	case "esc":
		m.filter.Blur()
		m.filter.Reset()
		m.disp.ResetGridFocus()
		events.Input.FilterChange("")
		return nil
	case "enter":
		m.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.disp.ResetGridFocus()
	events.Input.FilterChange(m.filter.Value())
	return cmd
}

// scrollResult pages the detail viewport. Arrow keys are not routed here;
// they step between sites.
func (m *Model) scrollResult(key string) {
	if m.disp.Mode() != input.ModeResult {
		return
	}
	switch key {
	case "pgup":
		m.vp.ViewUp()
	case "pgdown":
		m.vp.ViewDown()
	case "u":
		m.vp.HalfViewUp()
	case "d":
		m.vp.HalfViewDown()
	}
}
