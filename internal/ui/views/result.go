package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ResultRenderer handles rendering of result rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderResult renders one template row: heart, name and size
func (r *ResultRenderer) RenderResult(item ItemView, width int) string {
	// Background color for selection
	bg := lipgloss.NewStyle()
	if item.Selected {
		bg = r.styles.SelectionBg
	}

	cursor := "  "
	if item.Selected {
		cursor = "▸ "
	}

	heart := bg.Render("♡")
	if item.Favorite {
		heart = r.styles.Heart.Inherit(bg).Render("♥")
	}

	size := r.styles.Dim.Inherit(bg).Render("size: " + item.Template.Size())

	// Name gets whatever is left after the fixed parts
	fixed := ansi.StringWidth(cursor) + 2 + lipgloss.Width(size) + 2
	name := item.Template.Name
	if avail := width - fixed; avail > 0 && ansi.StringWidth(name) > avail {
		name = ansi.Truncate(name, avail, "…")
	}
	nameStyle := bg
	if item.Selected {
		nameStyle = r.styles.Highlight.Inherit(bg)
	}

	parts := []string{
		bg.Render(cursor),
		heart,
		bg.Render(" "),
		nameStyle.Render(name),
		bg.Render("  "),
		size,
	}
	return strings.Join(parts, "")
}

// RenderSkeletons renders placeholder rows shown while loading
func (r *ResultRenderer) RenderSkeletons(count, width int) string {
	if count <= 0 {
		return ""
	}
	barWidth := width - 4
	if barWidth > 48 {
		barWidth = 48
	}
	if barWidth < 8 {
		barWidth = 8
	}

	lines := make([]string, count)
	for i := range lines {
		// Vary the bar length a little so it reads as a list
		w := barWidth - (i%3)*6
		lines[i] = "  " + r.styles.Skeleton.Render(strings.Repeat("░", w))
	}
	return strings.Join(lines, "\n")
}
