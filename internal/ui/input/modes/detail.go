package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memegrip/internal/ui/input/types"
)

// DetailMode is active while the detail modal is open
type DetailMode struct {
	keys types.KeyMap
}

func NewDetailMode(keys types.KeyMap) *DetailMode {
	return &DetailMode{keys: keys}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	case key.Matches(msg, m.keys.Favorite):
		return []types.Action{types.ToggleFavoriteAction{}}, true
	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyURLAction{}}, true
	case key.Matches(msg, m.keys.Browser):
		return []types.Action{types.OpenURLAction{}}, true
	}
	// The modal swallows everything else
	return nil, true
}
