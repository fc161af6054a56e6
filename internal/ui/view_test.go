package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func focusedLine(t *testing.T, view string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "▌") {
			return line
		}
	}
	t.Fatalf("no focused line in view:\n%s", view)
	return ""
}

func TestViewGridFocusIndicator(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io", "gamma.app")
	h := newTestHarness(t, src, Options{})

	if line := focusedLine(t, plainView(h)); !strings.Contains(line, "alpha.dev") {
		t.Fatalf("focus line = %q, want alpha.dev", line)
	}

	h.SendKey("n")
	if line := focusedLine(t, plainView(h)); !strings.Contains(line, "beta.io") {
		t.Fatalf("focus line = %q, want beta.io", line)
	}

	h.SendKey("p")
	h.SendKey("p")
	if line := focusedLine(t, plainView(h)); !strings.Contains(line, "gamma.app") {
		t.Fatalf("focus line = %q, want gamma.app after wrap", line)
	}
}

func TestViewResultSections(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io")
	h := newTestHarness(t, src, Options{})

	h.SendKey("enter")

	view := plainView(h)
	for _, want := range []string{
		"alpha.dev",
		"https://alpha.dev",
		"captured",
		"Palette",
		"#336699",
		"primary",
		"42%",
		"Typography",
		"Inter",
		"400/700",
		"Logo",
		"https://alpha.dev/logo.svg",
		"Page",
		"alpha.dev home",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("result view missing %q:\n%s", want, view)
		}
	}
}

func TestViewPlaceholderWhileLoading(t *testing.T) {
	src := newFakeSource("alpha.dev")
	model := NewModel(src, nil, nil, Options{Width: 80, Height: 24, ShowFooter: true})
	model.catalog.Replace(src.entries)

	// The returned fetch command is not run, so the placeholder stays up.
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := ansi.Strip(model.View())
	if !strings.Contains(view, "loading alpha.dev") {
		t.Fatalf("view missing loading placeholder:\n%s", view)
	}
}

func TestViewSelectorOverlay(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io", "gamma.app")
	h := newTestHarness(t, src, Options{})
	h.SendKey("enter")

	h.SendKey("s")

	view := plainView(h)
	if !strings.Contains(view, "switch site") {
		t.Fatalf("overlay missing title:\n%s", view)
	}
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╰") {
		t.Fatalf("overlay missing border:\n%s", view)
	}
	for _, domain := range []string{"alpha.dev", "beta.io", "gamma.app"} {
		if !strings.Contains(view, domain) {
			t.Fatalf("overlay missing %s:\n%s", domain, view)
		}
	}
}

func TestViewEmptyCatalog(t *testing.T) {
	src := newFakeSource()
	h := newTestHarness(t, src, Options{})

	view := plainView(h)
	if !strings.Contains(view, "no extraction results in the catalog") {
		t.Fatalf("view missing empty message:\n%s", view)
	}
	if !strings.Contains(view, "press r to refresh") {
		t.Fatalf("view missing refresh hint:\n%s", view)
	}
	if !strings.Contains(view, "0 sites") {
		t.Fatalf("header missing count:\n%s", view)
	}
}

func TestViewFilterNoMatchMessage(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io")
	h := newTestHarness(t, src, Options{})

	h.SendKey("/")
	h.SendKey("z")
	h.SendKey("z")

	if view := plainView(h); !strings.Contains(view, `no sites match "zz"`) {
		t.Fatalf("view missing no-match message:\n%s", view)
	}
}

func TestViewFooterFollowsMode(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io")
	h := newTestHarness(t, src, Options{})

	if view := plainView(h); !strings.Contains(view, "r refresh") {
		t.Fatalf("grid footer missing:\n%s", view)
	}

	h.SendKey("enter")
	if view := plainView(h); !strings.Contains(view, "[ ] history") {
		t.Fatalf("result footer missing:\n%s", view)
	}

	h.SendKey("s")
	if view := plainView(h); !strings.Contains(view, "esc close") {
		t.Fatalf("selector footer missing:\n%s", view)
	}
}

func TestViewLinesStayInsideWidth(t *testing.T) {
	src := newFakeSource("alpha.dev", "beta.io", "gamma.app")
	h := newTestHarness(t, src, Options{Width: 30, Height: 12})

	check := func(stage string) {
		for _, line := range strings.Split(h.View(), "\n") {
			if w := lipgloss.Width(line); w > 30 {
				t.Fatalf("%s: line %d cells wide: %q", stage, w, line)
			}
		}
	}
	check("grid")
	h.SendKey("enter")
	check("result")
	h.SendKey("s")
	check("selector")
}
