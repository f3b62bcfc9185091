package state

import (
	"memegrip/internal/domain"
	"memegrip/internal/search"
)

// AppState contains all the application state the views read
type AppState struct {
	// Search data
	Search  search.Snapshot   // latest applied search
	Visible []domain.Template // what the list shows: results or favorites

	// Selection state
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// Suggestions
	Suggestions     []string
	SuggestionIndex int // -1 means nothing highlighted
	ShowSuggestions bool

	// UI state
	FavoritesView bool
	Detail        *domain.Template // template shown in the detail modal
	ShowHelp      bool
	StatusMessage string // catalog or storage notice in the title bar

	// Toast
	Toast      string
	ToastError bool
	toastSeq   int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Visible:         make([]domain.Template, 0),
		SuggestionIndex: -1,
		ViewportHeight:  20, // Default
	}
}

// SelectedTemplate returns the highlighted template, if any
func (s *AppState) SelectedTemplate() (domain.Template, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.Template{}, false
	}
	return s.Visible[s.SelectedIndex], true
}

// Suggestion operations

// SetSuggestions replaces the suggestion list and clears the highlight
func (s *AppState) SetSuggestions(words []string) {
	s.Suggestions = words
	s.SuggestionIndex = -1
}

// MoveSuggestion moves the highlight, stopping at both ends
func (s *AppState) MoveSuggestion(delta int) {
	n := len(s.Suggestions)
	if n == 0 {
		s.SuggestionIndex = -1
		return
	}
	next := s.SuggestionIndex + delta
	if next > n-1 {
		next = n - 1
	}
	if next < 0 {
		next = 0
	}
	s.SuggestionIndex = next
}

// Suggestion returns the word at index
func (s *AppState) Suggestion(index int) (string, bool) {
	if index < 0 || index >= len(s.Suggestions) {
		return "", false
	}
	return s.Suggestions[index], true
}

// SuggestionsVisible reports whether the dropdown is on screen
func (s *AppState) SuggestionsVisible() bool {
	return s.ShowSuggestions && len(s.Suggestions) > 0
}

// Toast operations

// SetToast shows a transient message and returns its sequence number. Only
// the expiry carrying the latest number clears it.
func (s *AppState) SetToast(text string, isError bool) int {
	s.toastSeq++
	s.Toast = text
	s.ToastError = isError
	return s.toastSeq
}

// ExpireToast clears the toast if seq is still the latest
func (s *AppState) ExpireToast(seq int) bool {
	if seq != s.toastSeq {
		return false
	}
	s.Toast = ""
	s.ToastError = false
	return true
}
