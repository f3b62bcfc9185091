package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// queryState tracks the text being typed and the committed search term.
// Every keystroke bumps seq, so only the last debounce tick commits.
type queryState struct {
	pending string
	active  string
	seq     int
	delay   time.Duration
}

func newQueryState(delay time.Duration) queryState {
	return queryState{delay: delay}
}

// Type records a keystroke and schedules the debounce tick
func (q *queryState) Type(text string) tea.Cmd {
	q.pending = text
	q.seq++
	seq := q.seq
	if q.delay <= 0 {
		return func() tea.Msg { return debounceMsg{seq: seq} }
	}
	return tea.Tick(q.delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// Settle commits the pending text if seq is the latest tick
func (q *queryState) Settle(seq int) (string, bool) {
	if seq != q.seq {
		return "", false
	}
	return q.commit(q.pending)
}

// Submit commits the pending text now and cancels any scheduled tick
func (q *queryState) Submit() (string, bool) {
	q.seq++
	return q.commit(q.pending)
}

// Set replaces the pending text and commits it now
func (q *queryState) Set(text string) (string, bool) {
	q.pending = text
	q.seq++
	return q.commit(text)
}

// Active returns the committed term
func (q *queryState) Active() string {
	return q.active
}

// commit reports false when the trimmed term equals the committed one
func (q *queryState) commit(text string) (string, bool) {
	term := strings.TrimSpace(text)
	if term == q.active {
		return term, false
	}
	q.active = term
	return term, true
}
