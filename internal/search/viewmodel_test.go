package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memegrip/internal/domain"
)

type fixedStore struct {
	templates []domain.Template
	err       error
}

func (s fixedStore) EnsurePopulated(ctx context.Context) ([]domain.Template, error) {
	return s.templates, s.err
}

// blockingStore returns only when the matching channel is released, so tests
// can control completion order
type blockingStore struct {
	mu       sync.Mutex
	gates    map[string]chan struct{}
	template []domain.Template
}

func (s *blockingStore) gate(query string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gates == nil {
		s.gates = make(map[string]chan struct{})
	}
	if _, ok := s.gates[query]; !ok {
		s.gates[query] = make(chan struct{})
	}
	return s.gates[query]
}

type queryKey struct{}

func (s *blockingStore) EnsurePopulated(ctx context.Context) ([]domain.Template, error) {
	<-s.gate(ctx.Value(queryKey{}).(string))
	return s.template, nil
}

func names(ts []domain.Template) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

var cached = []domain.Template{
	{ID: "1", Name: "Sad Frog"},
	{ID: "2", Name: "Drake Hotline Bling"},
	{ID: "3", Name: "Sad Pablo Escobar"},
	{ID: "4", Name: "Two Buttons"},
}

func TestFilterIsCaseInsensitiveAndTrimmed(t *testing.T) {
	got := Filter(cached, " Sad ")
	if diff := cmp.Diff([]string{"Sad Frog", "Sad Pablo Escobar"}, names(got)); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}

	got = Filter(cached, "HOTLINE")
	require.Equal(t, []string{"Drake Hotline Bling"}, names(got))
}

func TestFilterEmptyQueryReturnsEverythingInOrder(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(cached, q)
		require.Equal(t, names(cached), names(got), "query %q", q)
	}
}

func TestFilterNoMatchIsEmptyNotNil(t *testing.T) {
	got := Filter(cached, "zzz")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSearchReady(t *testing.T) {
	vm := NewViewModel()
	out := vm.Search(context.Background(), fixedStore{templates: cached}, "sad")

	require.NoError(t, out.Err)
	snap := vm.Snapshot()
	assert.Equal(t, domain.StatusReady, snap.Status)
	assert.Equal(t, []string{"Sad Frog", "Sad Pablo Escobar"}, names(snap.Results))
	assert.Len(t, snap.All, 4)
	assert.True(t, snap.HasTime)
	assert.GreaterOrEqual(t, snap.Elapsed, 0.0)
	assert.Equal(t, "", snap.StatusLine())
}

func TestSearchFailureKeepsPreviousAll(t *testing.T) {
	vm := NewViewModel()
	vm.Search(context.Background(), fixedStore{templates: cached}, "")

	out := vm.Search(context.Background(), fixedStore{err: errors.New("network down")}, "drake")
	require.Error(t, out.Err)

	snap := vm.Snapshot()
	assert.Equal(t, domain.StatusFailed, snap.Status)
	assert.Empty(t, snap.Results)
	assert.Len(t, snap.All, 4, "a failed search must not replace the full list")
	assert.True(t, snap.HasTime)
	assert.GreaterOrEqual(t, snap.Elapsed, 0.0)
	assert.Equal(t, "Error: network down", snap.StatusLine())
}

func TestStaleOutcomeIsDiscarded(t *testing.T) {
	vm := NewViewModel()
	store := &blockingStore{template: cached}

	first := vm.Begin("sad")
	second := vm.Begin("drake")

	outs := make(chan Outcome, 2)
	go func() {
		ctx := context.WithValue(context.Background(), queryKey{}, "sad")
		outs <- vm.Execute(ctx, store, first)
	}()
	go func() {
		ctx := context.WithValue(context.Background(), queryKey{}, "drake")
		outs <- vm.Execute(ctx, store, second)
	}()

	// newer query completes first, older one afterwards
	close(store.gate("drake"))
	newer := <-outs
	require.True(t, vm.Apply(newer))

	close(store.gate("sad"))
	older := <-outs
	require.False(t, vm.Apply(older))

	snap := vm.Snapshot()
	assert.Equal(t, "drake", snap.Query)
	assert.Equal(t, []string{"Drake Hotline Bling"}, names(snap.Results))
}

func TestStaleOutcomeDiscardedWhenOlderFinishesFirst(t *testing.T) {
	vm := NewViewModel()
	store := fixedStore{templates: cached}

	first := vm.Begin("sad")
	older := vm.Execute(context.Background(), store, first)
	second := vm.Begin("two")

	require.False(t, vm.Apply(older))
	assert.Equal(t, domain.StatusLoading, vm.Snapshot().Status)

	require.True(t, vm.Apply(vm.Execute(context.Background(), store, second)))
	assert.Equal(t, []string{"Two Buttons"}, names(vm.Snapshot().Results))
}

func TestElapsedRoundedToMilliseconds(t *testing.T) {
	vm := NewViewModel()
	base := time.Unix(100, 0)
	calls := 0
	vm.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(1234567 * time.Microsecond)
	}

	out := vm.Search(context.Background(), fixedStore{templates: cached}, "")
	require.Equal(t, 1.235, out.Elapsed)
	require.Equal(t, "About 4 results (1.235s)", vm.Snapshot().Summary())
}

func TestElapsedNeverNegative(t *testing.T) {
	require.Equal(t, 0.0, elapsedSeconds(time.Unix(10, 0), time.Unix(9, 0)))
}

func TestStatusLines(t *testing.T) {
	assert.Equal(t, "Loading…", Snapshot{Status: domain.StatusLoading}.StatusLine())
	assert.Equal(t, "Start typing to search.", Snapshot{Status: domain.StatusReady, Query: "  "}.StatusLine())
	assert.Equal(t, "No results found.", Snapshot{Status: domain.StatusReady, Query: "x"}.StatusLine())
	assert.Equal(t, "Error: API error", Snapshot{Status: domain.StatusFailed}.StatusLine())
}

func TestGenerationCountsRuns(t *testing.T) {
	vm := NewViewModel()
	vm.Begin("a")
	vm.Begin("b")
	require.EqualValues(t, 2, vm.Generation())
}
