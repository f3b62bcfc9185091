package ui

import (
	"memegrip/internal/eventbus"
	"memegrip/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries the outcome of one search run
type searchResultMsg struct {
	outcome search.Outcome
}

// debounceMsg fires when the input has been quiet for the debounce period
type debounceMsg struct {
	seq int
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
