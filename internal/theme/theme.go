// Package theme defines the lipgloss style tables the viewer renders with.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups every style the UI uses. Fields are pointers so a style
// can be shared and compared against the table it came from.
type Styles struct {
	Name string

	Header        *lipgloss.Style
	HeaderAccent  *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Indicator     *lipgloss.Style
	Faint         *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Hint          *lipgloss.Style
	Footer        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	SectionTitle  *lipgloss.Style
	SwatchHex     *lipgloss.Style
	OverlayBorder *lipgloss.Style
	OverlayTitle  *lipgloss.Style
	Placeholder   *lipgloss.Style
}

func ptr(s lipgloss.Style) *lipgloss.Style { return &s }

// Dark is the default theme.
func Dark() *Styles {
	return &Styles{
		Name:          "dark",
		Header:        ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))),
		HeaderAccent:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))),
		Item:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("252"))),
		SelectedItem:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))),
		Indicator:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("81"))),
		Faint:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243"))),
		Error:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
		Info:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
		Hint:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("179"))),
		Footer:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
		FilterPrompt:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("81"))),
		SectionTitle:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))),
		SwatchHex:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("252"))),
		OverlayBorder: ptr(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("81")).Padding(0, 1)),
		OverlayTitle:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))),
		Placeholder:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)),
	}
}

// Light adapts the palette for light terminal backgrounds.
func Light() *Styles {
	return &Styles{
		Name:          "light",
		Header:        ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235"))),
		HeaderAccent:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26"))),
		Item:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236"))),
		SelectedItem:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26"))),
		Indicator:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("26"))),
		Faint:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("246"))),
		Error:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("160"))),
		Info:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("28"))),
		Hint:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("130"))),
		Footer:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("242"))),
		FilterPrompt:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("26"))),
		SectionTitle:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25"))),
		SwatchHex:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236"))),
		OverlayBorder: ptr(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("26")).Padding(0, 1)),
		OverlayTitle:  ptr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235"))),
		Placeholder:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)),
	}
}

// ByName resolves a theme by name.
func ByName(name string) (*Styles, bool) {
	switch name {
	case "", "dark":
		return Dark(), true
	case "light":
		return Light(), true
	}
	return nil, false
}

// Names lists the available themes in cycling order.
func Names() []string {
	return []string{"dark", "light"}
}

// NextName returns the theme that follows name in cycling order.
func NextName(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
