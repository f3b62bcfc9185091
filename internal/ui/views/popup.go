package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of the main content. The
// content around the popup is kept but drawn greyscale.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	if width > 6 && modalW > width-6 { // keep a small margin
		modalW = width - 6
	}
	if height > 4 && modalH > height-4 {
		modalH = height - 4
		popupLines = popupLines[:modalH]
	}
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(mainContent, "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansi.Strip(line)
		if i < y || i >= y+modalH {
			out[i] = grey.Render(plain)
			continue
		}

		left := ansi.Truncate(plain, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		modal := ansi.Truncate(popupLines[i-y], modalW, "")
		right := skipColumns(plain, x+modalW)

		out[i] = grey.Render(left) + modal + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// skipColumns drops the first n display columns of a plain string
func skipColumns(plain string, n int) string {
	col := 0
	for i, r := range plain {
		if col >= n {
			return plain[i:]
		}
		col += ansi.StringWidth(string(r))
	}
	return ""
}
