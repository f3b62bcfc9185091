package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeSearch Mode = iota // typing into the query input
	ModeBrowse             // moving through the result list
	ModeDetail             // detail modal open
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeDetail:
		return "detail"
	default:
		return "search"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ResultCount() int
	SuggestionsVisible() bool
	SuggestionCount() int
	SuggestionIndex() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
