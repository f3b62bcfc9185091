package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"memegrip/internal/domain"
)

func TestMoveSuggestionStopsAtEnds(t *testing.T) {
	s := NewAppState()
	s.SetSuggestions([]string{"drake", "sad", "cat"})
	assert.Equal(t, -1, s.SuggestionIndex)

	s.MoveSuggestion(1)
	assert.Equal(t, 0, s.SuggestionIndex)
	s.MoveSuggestion(-1)
	assert.Equal(t, 0, s.SuggestionIndex)
	s.MoveSuggestion(1)
	s.MoveSuggestion(1)
	s.MoveSuggestion(1)
	assert.Equal(t, 2, s.SuggestionIndex)

	word, ok := s.Suggestion(s.SuggestionIndex)
	assert.True(t, ok)
	assert.Equal(t, "cat", word)

	s.SetSuggestions(nil)
	s.MoveSuggestion(1)
	assert.Equal(t, -1, s.SuggestionIndex)
}

func TestMoveSuggestionUpFromNothingPicksFirst(t *testing.T) {
	s := NewAppState()
	s.SetSuggestions([]string{"a", "b"})
	s.MoveSuggestion(-1)
	word, ok := s.Suggestion(s.SuggestionIndex)
	assert.True(t, ok)
	assert.Equal(t, "a", word)
}

func TestToastExpiryOnlyClearsLatest(t *testing.T) {
	s := NewAppState()
	first := s.SetToast("Copied", false)
	second := s.SetToast("Copy failed", true)

	assert.False(t, s.ExpireToast(first))
	assert.Equal(t, "Copy failed", s.Toast)
	assert.True(t, s.ToastError)

	assert.True(t, s.ExpireToast(second))
	assert.Empty(t, s.Toast)
}

func TestSelectedTemplate(t *testing.T) {
	s := NewAppState()
	_, ok := s.SelectedTemplate()
	assert.False(t, ok)

	s.Visible = []domain.Template{{ID: "1"}, {ID: "2"}}
	s.SelectedIndex = 1
	tpl, ok := s.SelectedTemplate()
	assert.True(t, ok)
	assert.Equal(t, "2", tpl.ID)
}
