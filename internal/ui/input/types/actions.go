package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Query actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitQueryAction commits the pending query without waiting for the debounce
type SubmitQueryAction struct{}

func (a SubmitQueryAction) Type() string { return "submit_query" }

// Suggestion actions
type MoveSuggestionAction struct {
	Delta int
}

func (a MoveSuggestionAction) Type() string { return "move_suggestion" }

type PickSuggestionAction struct {
	Index int
}

func (a PickSuggestionAction) Type() string { return "pick_suggestion" }

type ShowSuggestionsAction struct {
	Show bool
}

func (a ShowSuggestionsAction) Type() string { return "show_suggestions" }

// Template actions, applied to the selected result
type ToggleFavoriteAction struct{}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type OpenURLAction struct{}

func (a OpenURLAction) Type() string { return "open_url" }

type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// View actions
type ToggleFavoritesViewAction struct{}

func (a ToggleFavoritesViewAction) Type() string { return "toggle_favorites_view" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
