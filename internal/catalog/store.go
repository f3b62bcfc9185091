package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"memegrip/internal/domain"
	"memegrip/internal/eventbus"
)

// Fetcher retrieves the full template listing
type Fetcher interface {
	FetchTemplates(ctx context.Context) ([]domain.Template, error)
}

// Store is the process-wide template cache. It is populated by exactly one
// fetch; a failed fetch populates it with an empty list and is never retried.
type Store struct {
	fetcher Fetcher
	bus     eventbus.EventBus
	logger  *zap.Logger

	mu        sync.RWMutex
	state     domain.CacheState
	templates []domain.Template

	flight singleflight.Group
}

// NewStore creates an uninitialized store. bus may be nil.
func NewStore(fetcher Fetcher, bus eventbus.EventBus, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		fetcher: fetcher,
		bus:     bus,
		logger:  logger.Named("catalog"),
	}
}

// EnsurePopulated returns the cached templates, fetching them first if the
// cache is uninitialized. Concurrent callers that arrive before the fetch
// completes share it, and all of them receive its error. Callers arriving
// after population get the cached list (possibly empty) and a nil error.
//
// The returned slice is shared and must not be modified.
func (s *Store) EnsurePopulated(ctx context.Context) ([]domain.Template, error) {
	if templates, ok := s.cached(); ok {
		return templates, nil
	}

	// The fetch outlives the caller that started it so that an abandoned
	// search cannot leave the cache half-initialized.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan("templates", func() (interface{}, error) {
		return s.populate(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Val.([]domain.Template), res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// State reports whether the cache has been populated
func (s *Store) State() domain.CacheState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Len returns the number of cached templates
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// Templates returns the cached list without triggering a fetch
func (s *Store) Templates() ([]domain.Template, bool) {
	return s.cached()
}

func (s *Store) cached() ([]domain.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != domain.CachePopulated {
		return nil, false
	}
	return s.templates, true
}

func (s *Store) populate(ctx context.Context) ([]domain.Template, error) {
	// A caller may have joined the group just after a previous flight ended
	if templates, ok := s.cached(); ok {
		return templates, nil
	}

	s.logger.Debug("fetching template listing")
	templates, err := s.fetcher.FetchTemplates(ctx)
	if err != nil || templates == nil {
		templates = []domain.Template{}
	}

	s.mu.Lock()
	s.templates = templates
	s.state = domain.CachePopulated
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("template fetch failed, caching empty list", zap.Error(err))
		s.publish(eventbus.CatalogFetchFailedEvent{Err: err})
		return templates, err
	}

	s.logger.Info("template cache populated", zap.Int("count", len(templates)))
	s.publish(eventbus.CatalogPopulatedEvent{Count: len(templates)})
	return templates, nil
}

func (s *Store) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
