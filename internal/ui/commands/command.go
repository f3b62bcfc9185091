package commands

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"memegrip/internal/clipboard"
	"memegrip/internal/domain"
	"memegrip/internal/ui/state"
)

// ToastExpiredMsg clears the toast with the matching sequence number
type ToastExpiredMsg struct {
	Seq int
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// FavoriteToggler is the part of the favorites manager commands need
type FavoriteToggler interface {
	Toggle(id string) (bool, error)
}

// Copier copies text to the system clipboard
type Copier interface {
	Copy(text string) clipboard.Notice
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Favorites FavoriteToggler
	Copier    Copier
	Opener    URLOpener
	ToastTTL  time.Duration
	Logger    *zap.Logger
}

// toast shows text and schedules its expiry
func (c *CommandContext) toast(text string, isError bool) tea.Cmd {
	seq := c.State.SetToast(text, isError)
	return tea.Tick(c.ToastTTL, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// ToggleFavoriteCommand adds or removes a template from favorites
type ToggleFavoriteCommand struct {
	ctx      *CommandContext
	template domain.Template
}

// NewToggleFavoriteCommand creates a new toggle favorite command
func NewToggleFavoriteCommand(ctx *CommandContext, template domain.Template) *ToggleFavoriteCommand {
	return &ToggleFavoriteCommand{ctx: ctx, template: template}
}

// Execute flips the favorite state. The in-memory set changes even when
// persisting fails, so the toast reports the failure separately.
func (c *ToggleFavoriteCommand) Execute() tea.Cmd {
	if c.ctx.Favorites == nil {
		return nil
	}
	favorite, err := c.ctx.Favorites.Toggle(c.template.ID)
	if err != nil {
		c.ctx.Logger.Warn("favorite not persisted",
			zap.String("id", c.template.ID), zap.Bool("favorite", favorite), zap.Error(err))
		return c.ctx.toast("Favorites not saved", true)
	}
	return c.ctx.toast("Updated favorites", false)
}

// CopyURLCommand copies the template image URL to the clipboard
type CopyURLCommand struct {
	ctx      *CommandContext
	template domain.Template
}

// NewCopyURLCommand creates a new copy command
func NewCopyURLCommand(ctx *CommandContext, template domain.Template) *CopyURLCommand {
	return &CopyURLCommand{ctx: ctx, template: template}
}

// Execute performs the copy and reports the outcome as a toast
func (c *CopyURLCommand) Execute() tea.Cmd {
	if c.ctx.Copier == nil {
		return c.ctx.toast("Clipboard not available", true)
	}
	notice := c.ctx.Copier.Copy(c.template.URL)
	return c.ctx.toast(notice.Text, !notice.OK())
}

// OpenURLCommand opens the template image in the default browser
type OpenURLCommand struct {
	ctx      *CommandContext
	template domain.Template
}

// NewOpenURLCommand creates a new open command
func NewOpenURLCommand(ctx *CommandContext, template domain.Template) *OpenURLCommand {
	return &OpenURLCommand{ctx: ctx, template: template}
}

// Execute launches the browser
func (c *OpenURLCommand) Execute() tea.Cmd {
	if c.template.URL == "" {
		return c.ctx.toast("No image URL", true)
	}
	if c.ctx.Opener == nil {
		return c.ctx.toast("Cannot open browser", true)
	}
	if err := c.ctx.Opener.Open(c.template.URL); err != nil {
		c.ctx.Logger.Warn("open url failed", zap.String("url", c.template.URL), zap.Error(err))
		if errors.Is(err, ErrNoBrowser) {
			return c.ctx.toast("No browser available", true)
		}
		return c.ctx.toast("Cannot open browser", true)
	}
	return c.ctx.toast("Opened in browser", false)
}
