package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Suggestion    lipgloss.Style
	SuggestionHi  lipgloss.Style
	DetailBox     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Heart         lipgloss.Style
	Skeleton      lipgloss.Style
	Summary       lipgloss.Style
	Toast         lipgloss.Style
	ToastError    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		Suggestion:   lipgloss.NewStyle().PaddingLeft(2),
		SuggestionHi: lipgloss.NewStyle().PaddingLeft(2).Background(lipgloss.Color("238")).Bold(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("63")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Heart:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Skeleton:      lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Summary:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Padding(0, 1),
		ToastError:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("124")).Padding(0, 1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
