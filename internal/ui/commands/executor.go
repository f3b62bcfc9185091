package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"memegrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(appState *state.AppState, favs FavoriteToggler, copier Copier, opener URLOpener, toastTTL time.Duration, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			State:     appState,
			Favorites: favs,
			Copier:    copier,
			Opener:    opener,
			ToastTTL:  toastTTL,
			Logger:    logger,
		},
	}
}

// ExecuteToggleFavorite toggles the selected template
func (e *Executor) ExecuteToggleFavorite() tea.Cmd {
	tpl, ok := e.ctx.State.SelectedTemplate()
	if !ok {
		return nil
	}
	return NewToggleFavoriteCommand(e.ctx, tpl).Execute()
}

// ExecuteCopyURL copies the selected template's URL
func (e *Executor) ExecuteCopyURL() tea.Cmd {
	tpl, ok := e.ctx.State.SelectedTemplate()
	if !ok {
		return nil
	}
	return NewCopyURLCommand(e.ctx, tpl).Execute()
}

// ExecuteOpenURL opens the selected template's URL
func (e *Executor) ExecuteOpenURL() tea.Cmd {
	tpl, ok := e.ctx.State.SelectedTemplate()
	if !ok {
		return nil
	}
	return NewOpenURLCommand(e.ctx, tpl).Execute()
}

// ExecuteToast shows an arbitrary toast
func (e *Executor) ExecuteToast(text string, isError bool) tea.Cmd {
	return e.ctx.toast(text, isError)
}
