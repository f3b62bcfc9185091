package search

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"memegrip/internal/domain"
)

// Populator is the part of the template store a search needs
type Populator interface {
	EnsurePopulated(ctx context.Context) ([]domain.Template, error)
}

// Run identifies one search execution. Gen increases with every committed query.
type Run struct {
	Gen   uint64
	Query string
	Start time.Time
}

// Outcome is the result of executing a Run
type Outcome struct {
	Gen     uint64
	Query   string
	Results []domain.Template
	All     []domain.Template // nil when the search failed
	Err     error
	Elapsed float64 // seconds, millisecond precision
}

// Snapshot is a consistent copy of the view-model state
type Snapshot struct {
	Query   string
	Results []domain.Template
	All     []domain.Template
	Status  domain.SearchStatus
	Err     error
	Elapsed float64
	HasTime bool
}

// ViewModel derives the displayed result set from the active query. Only the
// outcome of the most recently begun run may change its state.
type ViewModel struct {
	mu      sync.RWMutex
	gen     uint64
	query   string
	results []domain.Template
	all     []domain.Template
	status  domain.SearchStatus
	err     error
	elapsed float64
	hasTime bool

	now func() time.Time
}

// NewViewModel creates an idle view-model
func NewViewModel() *ViewModel {
	return &ViewModel{now: time.Now}
}

// Begin marks the view-model as loading for query and returns the run token
// that must accompany its outcome
func (vm *ViewModel) Begin(query string) Run {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.gen++
	vm.query = query
	vm.status = domain.StatusLoading
	vm.err = nil

	return Run{Gen: vm.gen, Query: query, Start: vm.now()}
}

// Execute ensures the store is populated and filters it. It does not touch
// the view-model state; pass the outcome to Apply.
func (vm *ViewModel) Execute(ctx context.Context, store Populator, run Run) Outcome {
	out := Outcome{Gen: run.Gen, Query: run.Query}

	all, err := store.EnsurePopulated(ctx)
	if err != nil {
		out.Err = err
		out.Results = []domain.Template{}
	} else {
		out.All = all
		out.Results = Filter(all, run.Query)
	}

	out.Elapsed = elapsedSeconds(run.Start, vm.now())
	return out
}

// Apply stores the outcome if it belongs to the latest run. It reports false
// for stale outcomes, which are discarded.
func (vm *ViewModel) Apply(out Outcome) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if out.Gen != vm.gen {
		return false
	}

	vm.results = out.Results
	vm.elapsed = out.Elapsed
	vm.hasTime = true
	if out.Err != nil {
		vm.status = domain.StatusFailed
		vm.err = out.Err
		return true
	}

	vm.all = out.All
	vm.status = domain.StatusReady
	vm.err = nil
	return true
}

// Search runs Begin, Execute and Apply in sequence
func (vm *ViewModel) Search(ctx context.Context, store Populator, query string) Outcome {
	run := vm.Begin(query)
	out := vm.Execute(ctx, store, run)
	vm.Apply(out)
	return out
}

// Generation returns the number of runs begun so far
func (vm *ViewModel) Generation() uint64 {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.gen
}

// Snapshot returns the current state
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return Snapshot{
		Query:   vm.query,
		Results: vm.results,
		All:     vm.all,
		Status:  vm.status,
		Err:     vm.err,
		Elapsed: vm.elapsed,
		HasTime: vm.hasTime,
	}
}

// StatusLine renders the one-line status shown above the results
func (s Snapshot) StatusLine() string {
	switch {
	case s.Status == domain.StatusLoading:
		return "Loading…"
	case s.Status == domain.StatusFailed:
		msg := "API error"
		if s.Err != nil {
			msg = s.Err.Error()
		}
		return "Error: " + msg
	case Normalize(s.Query) == "":
		return "Start typing to search."
	case len(s.Results) == 0:
		return "No results found."
	default:
		return ""
	}
}

// Summary renders the result count line, or "" when there is nothing to count
func (s Snapshot) Summary() string {
	if len(s.Results) == 0 {
		return ""
	}
	if s.HasTime && s.Elapsed > 0 {
		return fmt.Sprintf("About %d results (%.3fs)", len(s.Results), s.Elapsed)
	}
	return fmt.Sprintf("About %d results", len(s.Results))
}

func elapsedSeconds(start, end time.Time) float64 {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	return math.Round(d.Seconds()*1000) / 1000
}
