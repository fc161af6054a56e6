package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/RolfLobo/dembrandt/internal/artifact"
	"github.com/RolfLobo/dembrandt/internal/format/table"
	"github.com/RolfLobo/dembrandt/internal/theme"
)

const swatchBlock = "      "

// renderArtifact lays out a loaded result for the viewport: palette
// swatches, typography table, logo, and page metadata.
func renderArtifact(art *artifact.Artifact, width int, styles *theme.Styles) string {
	var sections []string

	if len(art.Palette) > 0 {
		sections = append(sections, renderPalette(art.Palette, styles))
	}
	if len(art.Typography.Families) > 0 {
		sections = append(sections, renderTypography(art.Typography.Families, styles))
	}
	if art.Logo.URL != "" {
		sections = append(sections, renderLogo(art.Logo, styles))
	}
	if art.Meta.Title != "" || art.Meta.Description != "" {
		sections = append(sections, renderMeta(art.Meta, width, styles))
	}
	if len(sections) == 0 {
		return styles.Faint.Render("the extractor recorded no brand data for this site")
	}
	return strings.Join(sections, "\n\n")
}

func renderPalette(palette []artifact.Swatch, styles *theme.Styles) string {
	rows := make([][]string, 0, len(palette))
	for _, sw := range palette {
		block := lipgloss.NewStyle().Background(lipgloss.Color(sw.Hex)).Render(swatchBlock)
		share := ""
		if sw.Share > 0 {
			share = fmt.Sprintf("%.0f%%", sw.Share*100)
		}
		rows = append(rows, []string{block, styles.SwatchHex.Render(sw.Hex), sw.Role, share})
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight}
	return section(styles.SectionTitle.Render("Palette"), table.Format(rows, aligns))
}

func renderTypography(families []artifact.FontFamily, styles *theme.Styles) string {
	rows := make([][]string, 0, len(families))
	for _, fam := range families {
		rows = append(rows, []string{fam.Name, fam.Role, weightsLabel(fam.Weights), fam.Stack})
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft}
	return section(styles.SectionTitle.Render("Typography"), table.Format(rows, aligns))
}

func renderLogo(logo artifact.Logo, styles *theme.Styles) string {
	lines := []string{logo.URL}
	if logo.Alt != "" {
		lines = append(lines, styles.Faint.Render("alt: "+logo.Alt))
	}
	return section(styles.SectionTitle.Render("Logo"), lines)
}

func renderMeta(meta artifact.Meta, width int, styles *theme.Styles) string {
	var lines []string
	if meta.Title != "" {
		lines = append(lines, meta.Title)
	}
	if meta.Description != "" {
		wrapped := wordwrap.String(meta.Description, wrapWidth(width))
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, styles.Faint.Render(line))
		}
	}
	return section(styles.SectionTitle.Render("Page"), lines)
}

func section(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(title)
	for _, line := range lines {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}

func weightsLabel(weights []int) string {
	if len(weights) == 0 {
		return ""
	}
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, "/")
}

func wrapWidth(width int) int {
	w := width - 4
	if w < 20 {
		w = 20
	}
	return w
}
