package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"memegrip/internal/eventbus"
	"memegrip/internal/ui/state"
)

// Toaster shows a transient message and returns the expiry command
type Toaster func(text string, isError bool) tea.Cmd

// EventHandler handles domain events and updates state
type EventHandler struct {
	state          *state.AppState
	toast          Toaster
	refreshVisible func()
}

// NewEventHandler creates a new event handler. refreshVisible rebuilds the
// displayed list after the favorites set changes.
func NewEventHandler(appState *state.AppState, toast Toaster, refreshVisible func()) *EventHandler {
	return &EventHandler{
		state:          appState,
		toast:          toast,
		refreshVisible: refreshVisible,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogPopulatedEvent:
		h.state.StatusMessage = fmt.Sprintf("%d templates", e.Count)

	case eventbus.CatalogFetchFailedEvent:
		// The search status line already carries the error text
		h.state.StatusMessage = "offline"

	case eventbus.FavoriteToggledEvent:
		if h.state.FavoritesView && h.refreshVisible != nil {
			h.refreshVisible()
		}

	case eventbus.StorageFailedEvent:
		h.state.StatusMessage = "favorites not saved"
		if h.toast != nil {
			return h.toast("Favorites not saved", true)
		}

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = "config saved"
	}

	return nil
}
