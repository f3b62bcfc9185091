package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"memegrip/internal/domain"
)

// ItemView is one result row
type ItemView struct {
	Template domain.Template
	Favorite bool
	Selected bool
}

// DetailView is the content of the detail modal
type DetailView struct {
	Template domain.Template
	Favorite bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Mode            string
	Input           string
	Suggestions     []string
	SuggestionIndex int
	ShowSuggestions bool
	StatusLine      string
	StatusError     bool
	Loading         bool
	Spinner         string
	Skeletons       int
	Items           []ItemView // rows inside the viewport only
	TotalItems      int
	ViewportOffset  int
	Summary         string
	FavoritesView   bool
	StatusMessage   string
	Toast           string
	ToastError      bool
	Detail          *DetailView
	ShowHelp        bool
	HelpModel       help.Model
	Keys            help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Use a default width if state.Width is not set
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n")
	content.WriteString(r.styles.Subtitle.Render("Meme template search (Imgflip)"))
	content.WriteString("\n\n")

	// Query input
	inputStyle := r.styles.Input
	if state.Mode == "search" {
		inputStyle = r.styles.InputFocused
	}
	content.WriteString(inputStyle.Width(innerWidth - 2).Render(state.Input))
	content.WriteString("\n")

	if state.ShowSuggestions {
		content.WriteString(r.renderSuggestions(state))
		content.WriteString("\n")
	}

	// Status line
	if state.StatusLine != "" {
		style := r.styles.StatusLoading
		if state.StatusError {
			style = r.styles.StatusError
		}
		line := state.StatusLine
		if state.Loading && state.Spinner != "" {
			line = state.Spinner + " " + line
		}
		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	// Main content
	switch {
	case state.Loading:
		content.WriteString(r.resultRender.RenderSkeletons(state.Skeletons, innerWidth))
	case state.FavoritesView && state.TotalItems == 0:
		content.WriteString(r.styles.Dim.Render("No favorites in the current list."))
	default:
		content.WriteString(r.renderResultList(state, innerWidth))
	}

	if state.Summary != "" && !state.Loading {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Summary.Render(state.Summary))
	}

	// Footer: toast on the right, help on the left
	footer := r.renderFooter(state, innerWidth)
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1

	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay the detail modal on top of main content
	if state.Detail != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDetail(*state.Detail), state.Height, termWidth, r.styles.DetailBox)
	}

	return finalContent
}

// renderTitle renders the logo with right-aligned indicators
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("memegrip")

	var right []string
	if state.StatusMessage != "" {
		right = append(right, r.styles.Dim.Render(state.StatusMessage))
	}
	if state.FavoritesView {
		right = append(right, r.styles.Filter.Render("[♥ Favorites]"))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	// If not enough space, just show with minimal spacing
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderSuggestions renders the dropdown below the input
func (r *Renderer) renderSuggestions(state ViewState) string {
	lines := make([]string, 0, len(state.Suggestions))
	for i, word := range state.Suggestions {
		if i == state.SuggestionIndex {
			lines = append(lines, r.styles.SuggestionHi.Render("› "+word))
		} else {
			lines = append(lines, r.styles.Suggestion.Render("  "+word))
		}
	}
	return strings.Join(lines, "\n")
}

// renderResultList renders the visible rows with scroll indicators
func (r *Renderer) renderResultList(state ViewState, width int) string {
	var lines []string

	if state.ViewportOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}
	for _, item := range state.Items {
		lines = append(lines, r.resultRender.RenderResult(item, width))
	}
	if below := state.TotalItems - state.ViewportOffset - len(state.Items); below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the help line and the toast on one row
func (r *Renderer) renderFooter(state ViewState, width int) string {
	helpText := r.styles.Help.Render("Press ? for help")
	if state.Keys != nil {
		if state.ShowHelp {
			state.HelpModel.ShowAll = true
		}
		helpText = state.HelpModel.View(state.Keys)
	}

	if state.Toast == "" {
		return helpText
	}

	toastStyle := r.styles.Toast
	if state.ToastError {
		toastStyle = r.styles.ToastError
	}
	toast := toastStyle.Render(state.Toast)

	// Put the toast at the right end of the last help line
	helpLines := strings.Split(helpText, "\n")
	last := helpLines[len(helpLines)-1]
	if gap := width - lipgloss.Width(last) - lipgloss.Width(toast); gap > 0 {
		helpLines[len(helpLines)-1] = last + strings.Repeat(" ", gap) + toast
	} else {
		helpLines = append(helpLines, toast)
	}
	return strings.Join(helpLines, "\n")
}

// renderDetail renders the modal body for one template
func (r *Renderer) renderDetail(detail DetailView) string {
	tpl := detail.Template
	label := r.styles.Dim

	heart := "♡ not a favorite"
	if detail.Favorite {
		heart = r.styles.Heart.Render("♥") + " favorite"
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(tpl.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", label.Render("id:       "), tpl.ID)
	fmt.Fprintf(&b, "%s %s\n", label.Render("size:     "), tpl.Size())
	fmt.Fprintf(&b, "%s %d\n", label.Render("boxes:    "), tpl.BoxCount)
	fmt.Fprintf(&b, "%s %s\n", label.Render("url:      "), tpl.URL)
	fmt.Fprintf(&b, "%s %s\n\n", label.Render("favorite: "), heart)
	b.WriteString(r.styles.Help.Render("esc close • f favorite • c copy url • o open"))
	return b.String()
}
