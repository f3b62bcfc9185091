package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"memegrip/internal/clipboard"
	"memegrip/internal/ui"
	"memegrip/internal/ui/commands"
)

func runTUI(cmd *cobra.Command, opts *options) error {
	app, err := opts.openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	model := ui.NewModel(cmd.Context(), app.Config, ui.Dependencies{
		Store:     app.Store,
		Favorites: app.Favorites,
		Copier:    clipboard.NewCopier(app.Logger),
		Opener:    commands.NewSystemOpener(),
		Logger:    app.Logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	stop := ui.ForwardEvents(app.Bus, p.Send, app.Logger)
	defer stop()

	app.Logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	app.Logger.Info("UI exited normally")
	return nil
}
