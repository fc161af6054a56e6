package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/RolfLobo/dembrandt/internal/format/table"
	"github.com/RolfLobo/dembrandt/internal/input"
	"github.com/RolfLobo/dembrandt/internal/nav"
)

const resultHeaderRows = 4

// View renders the whole screen: header, body, status, and footer.
func (m *Model) View() string {
	bodyH := m.bodyHeight()

	var body []string
	switch {
	case m.disp.SelectorOpen():
		body = m.selectorLines(bodyH)
	case m.ResultShown():
		body = m.resultLines(bodyH)
	default:
		body = m.gridLines(bodyH)
	}
	for len(body) < bodyH {
		body = append(body, "")
	}
	if len(body) > bodyH {
		body = body[:bodyH]
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLine(), "")
	lines = append(lines, body...)
	lines = append(lines, m.statusLine(), m.promptLine())
	if m.showFooter {
		lines = append(lines, m.footerLine())
	}
	for i, line := range lines {
		lines[i] = m.fitLine(line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) bodyHeight() int {
	used := 4 // header, blank, status, prompt
	if m.showFooter {
		used++
	}
	h := m.height - used
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) headerLine() string {
	title := m.styles.Header.Render("dembrandt")
	if slot := m.coord.Slot(); slot.State != nav.SlotEmpty {
		return title + m.styles.Faint.Render(" → ") + m.styles.HeaderAccent.Render(slot.Domain)
	}
	count := m.catalog.Snapshot().Len()
	label := fmt.Sprintf("%d sites", count)
	if count == 1 {
		label = "1 site"
	}
	return title + m.styles.Faint.Render(" · "+label)
}

func (m *Model) gridLines(bodyH int) []string {
	if m.catalog.Snapshot().Len() == 0 {
		return []string{
			m.styles.Faint.Render("no extraction results in the catalog"),
			m.styles.Faint.Render("press r to refresh"),
		}
	}
	entries := m.VisibleEntries()
	if len(entries) == 0 {
		return []string{m.styles.Faint.Render(fmt.Sprintf("no sites match %q", m.filter.Value()))}
	}

	focus := m.disp.GridFocus()
	m.gridWindow.EnsureVisible(focus, len(entries), bodyH)
	start, end := m.gridWindow.Bounds(len(entries), bodyH)

	rows := make([][]string, 0, end-start)
	for _, entry := range entries[start:end] {
		rows = append(rows, []string{entry.Domain, humanize.Time(entry.CapturedAt), entry.Kind})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})

	lines := make([]string, 0, len(formatted))
	for i, row := range formatted {
		idx := start + i
		if idx == focus {
			lines = append(lines, m.styles.Indicator.Render("▌ ")+m.styles.SelectedItem.Render(row))
			continue
		}
		lines = append(lines, "  "+m.styles.Item.Render(row))
	}
	return lines
}

func (m *Model) resultLines(bodyH int) []string {
	slot := m.coord.Slot()
	lines := []string{
		m.styles.HeaderAccent.Render(slot.Domain),
		m.styles.Faint.Render(slot.SourceURL),
		m.styles.Faint.Render(fmt.Sprintf("captured %s", humanize.Time(slot.CapturedAt))),
		"",
	}
	switch {
	case m.coord.LastError() != nil:
		lines = append(lines, m.styles.Error.Render(fmt.Sprintf("load failed: %v", m.coord.LastError())))
		lines = append(lines, m.styles.Faint.Render("n/p to try another site, h for the grid"))
	case slot.State == nav.SlotPlaceholder:
		lines = append(lines, m.spin.View()+" "+m.styles.Placeholder.Render("loading "+slot.Domain+"…"))
	default:
		lines = append(lines, strings.Split(m.vp.View(), "\n")...)
	}
	if bodyH > 0 && len(lines) > bodyH {
		lines = lines[:bodyH]
	}
	return lines
}

func (m *Model) selectorLines(bodyH int) []string {
	items := m.disp.SelectorItems()
	focus := m.disp.SelectorFocus()

	maxVisible := bodyH - 4
	if maxVisible < 1 {
		maxVisible = 1
	}
	if maxVisible > len(items) {
		maxVisible = len(items)
	}
	m.selectorWindow.EnsureVisible(focus, len(items), maxVisible)
	start, end := m.selectorWindow.Bounds(len(items), maxVisible)

	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("switch site"))
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(m.styles.Faint.Render("catalog is empty"))
	}
	for i := start; i < end; i++ {
		row := fmt.Sprintf("%-28s %s", items[i].Domain, humanize.Time(items[i].CapturedAt))
		if i == focus {
			b.WriteString(m.styles.Indicator.Render("▌ ") + m.styles.SelectedItem.Render(row))
		} else {
			b.WriteString("  " + m.styles.Item.Render(row))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	box := m.styles.OverlayBorder.Render(b.String())
	placed := lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, box)
	return strings.Split(placed, "\n")
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return m.styles.Error.Render("error: " + m.errMsg)
	case m.coord.LastError() != nil && m.disp.Mode() != input.ModeResult:
		return m.styles.Error.Render(fmt.Sprintf("error: %v", m.coord.LastError()))
	case m.refreshing:
		return m.styles.Faint.Render("refreshing…")
	case m.currentInfo() != "":
		return m.styles.Info.Render(m.currentInfo())
	case m.changeHint:
		return m.styles.Hint.Render("results changed on disk, press r to refresh")
	}
	return ""
}

func (m *Model) promptLine() string {
	if m.disp.Mode() != input.ModeGrid {
		return ""
	}
	if m.filter.Focused() {
		return m.filter.View()
	}
	if query := m.filter.Value(); query != "" {
		return m.styles.FilterPrompt.Render("/ " + query)
	}
	return ""
}

func (m *Model) footerLine() string {
	var hint string
	switch m.disp.Mode() {
	case input.ModeSelector:
		hint = "n/p move · enter open · esc close"
	case input.ModeResult:
		hint = "n/p step · s switch · h home · [ ] history · u/d scroll · q quit"
	default:
		hint = "↑/↓ move · enter open · / filter · r refresh · t theme · q quit"
	}
	return m.styles.Footer.Render(hint)
}

func (m *Model) fitLine(line string) string {
	if m.width <= 0 {
		return line
	}
	if lipgloss.Width(line) <= m.width {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width-1), "…")
}

// rebuildResult renders the loaded artifact into the viewport.
func (m *Model) rebuildResult() {
	slot := m.coord.Slot()
	if slot.State != nav.SlotLoaded || slot.Artifact == nil {
		return
	}
	m.resizeViewport()
	m.vp.SetContent(renderArtifact(slot.Artifact, m.width, m.styles))
	m.vp.GotoTop()
}

func (m *Model) resizeViewport() {
	m.vp.Width = m.width
	h := m.bodyHeight() - resultHeaderRows
	if h < 1 {
		h = 1
	}
	m.vp.Height = h
	if m.coord.Slot().State == nav.SlotLoaded {
		if art := m.coord.Slot().Artifact; art != nil {
			m.vp.SetContent(renderArtifact(art, m.width, m.styles))
		}
	}
}
