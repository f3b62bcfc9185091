package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memegrip/internal/ui/input/types"
)

// SearchMode owns the query input and the suggestion dropdown
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return []types.Action{types.ShowSuggestionsAction{Show: false}}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		if ctx.SuggestionsVisible() {
			return []types.Action{types.ShowSuggestionsAction{Show: false}}, true
		}
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
		}
		return nil, true

	case "down":
		if ctx.SuggestionsVisible() && ctx.SuggestionCount() > 0 {
			return []types.Action{types.MoveSuggestionAction{Delta: 1}}, true
		}
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
		}
		return nil, true

	case "up":
		if ctx.SuggestionsVisible() && ctx.SuggestionCount() > 0 {
			return []types.Action{types.MoveSuggestionAction{Delta: -1}}, true
		}
		return nil, true

	case "enter":
		if ctx.SuggestionsVisible() && ctx.SuggestionIndex() >= 0 {
			return []types.Action{
				types.PickSuggestionAction{Index: ctx.SuggestionIndex()},
				types.ShowSuggestionsAction{Show: false},
			}, true
		}
		return []types.Action{
			types.SubmitQueryAction{},
			types.ShowSuggestionsAction{Show: false},
		}, true

	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	default:
		// Let the handler feed the key to the text input
		return nil, false
	}
}
