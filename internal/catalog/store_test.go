package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"memegrip/internal/domain"
	"memegrip/internal/eventbus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gatedFetcher blocks every fetch until release is closed
type gatedFetcher struct {
	calls     atomic.Int32
	started   chan struct{}
	release   chan struct{}
	templates []domain.Template
	err       error
}

func newGatedFetcher(templates []domain.Template, err error) *gatedFetcher {
	return &gatedFetcher{
		started:   make(chan struct{}, 16),
		release:   make(chan struct{}),
		templates: templates,
		err:       err,
	}
}

func (f *gatedFetcher) FetchTemplates(ctx context.Context) ([]domain.Template, error) {
	f.calls.Add(1)
	f.started <- struct{}{}
	<-f.release
	return f.templates, f.err
}

func sample() []domain.Template {
	return []domain.Template{
		{ID: "1", Name: "Drake Hotline Bling"},
		{ID: "2", Name: "Distracted Boyfriend"},
		{ID: "3", Name: "Sad Pablo Escobar"},
	}
}

func TestEnsurePopulatedFetchesOnce(t *testing.T) {
	f := newGatedFetcher(sample(), nil)
	close(f.release)
	s := NewStore(f, nil, nil)

	require.Equal(t, domain.CacheUninitialized, s.State())

	first, err := s.EnsurePopulated(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := s.EnsurePopulated(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, f.calls.Load())
	require.Equal(t, domain.CachePopulated, s.State())
	require.Equal(t, 3, s.Len())
}

func TestConcurrentCallersShareOneFetch(t *testing.T) {
	f := newGatedFetcher(sample(), nil)
	s := NewStore(f, nil, nil)

	const callers = 25
	var wg sync.WaitGroup
	results := make([][]domain.Template, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.EnsurePopulated(context.Background())
		}(i)
	}

	<-f.started
	// give the remaining callers time to pile up behind the in-flight fetch
	time.Sleep(50 * time.Millisecond)
	close(f.release)
	wg.Wait()

	require.EqualValues(t, 1, f.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 3)
	}
}

func TestFailedFetchCachesEmptyListWithoutRetry(t *testing.T) {
	boom := errors.New("network down")
	f := newGatedFetcher(nil, boom)
	close(f.release)
	s := NewStore(f, nil, nil)

	templates, err := s.EnsurePopulated(context.Background())
	require.ErrorIs(t, err, boom)
	require.NotNil(t, templates)
	require.Empty(t, templates)
	require.Equal(t, domain.CachePopulated, s.State())

	templates, err = s.EnsurePopulated(context.Background())
	require.NoError(t, err, "later callers must not see the fetch error")
	require.Empty(t, templates)
	require.EqualValues(t, 1, f.calls.Load())
}

func TestConcurrentCallersAllSeeFetchError(t *testing.T) {
	boom := errors.New("bad gateway")
	f := newGatedFetcher(nil, boom)
	s := NewStore(f, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.EnsurePopulated(context.Background())
		}(i)
	}

	<-f.started
	time.Sleep(30 * time.Millisecond)
	close(f.release)
	wg.Wait()

	for _, err := range errs {
		require.ErrorIs(t, err, boom)
	}
	require.EqualValues(t, 1, f.calls.Load())
}

func TestCancelledCallerDoesNotAbortFetch(t *testing.T) {
	f := newGatedFetcher(sample(), nil)
	s := NewStore(f, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.EnsurePopulated(ctx)
		done <- err
	}()

	<-f.started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	close(f.release)
	templates, err := s.EnsurePopulated(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 3)
	require.EqualValues(t, 1, f.calls.Load())
}

func TestTemplatesDoesNotFetch(t *testing.T) {
	f := newGatedFetcher(sample(), nil)
	close(f.release)
	s := NewStore(f, nil, nil)

	_, ok := s.Templates()
	require.False(t, ok)
	require.Zero(t, f.calls.Load())
}

func TestPopulationPublishesEvents(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	populated := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventCatalogPopulated, func(e eventbus.DomainEvent) {
		populated <- e
	})

	f := newGatedFetcher(sample(), nil)
	close(f.release)
	s := NewStore(f, bus, nil)

	_, err := s.EnsurePopulated(context.Background())
	require.NoError(t, err)

	select {
	case e := <-populated:
		require.Equal(t, 3, e.(eventbus.CatalogPopulatedEvent).Count)
	case <-time.After(2 * time.Second):
		t.Fatal("populated event not published")
	}
}
