package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"memegrip/internal/domain"
	"memegrip/internal/eventbus"
	"memegrip/internal/kv"
)

// ErrStorage wraps failures to persist the favorites set
var ErrStorage = errors.New("favorites storage failure")

// Manager keeps the set of favorite template IDs and persists it under a
// single key as a JSON array. The in-memory set is authoritative: a failed
// write leaves it updated and the persisted copy lagging.
type Manager struct {
	store  kv.Store
	key    string
	bus    eventbus.EventBus
	logger *zap.Logger

	mu    sync.RWMutex
	ids   []string
	index map[string]struct{}
}

// NewManager creates a manager with an empty set; call Load to read the
// persisted one. bus may be nil.
func NewManager(store kv.Store, key string, bus eventbus.EventBus, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		key:    key,
		bus:    bus,
		logger: logger.Named("favorites"),
		index:  make(map[string]struct{}),
	}
}

// Load replaces the in-memory set with the persisted one. Missing, unreadable
// or malformed data yields an empty set.
func (m *Manager) Load() {
	ids := m.read()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = make([]string, 0, len(ids))
	m.index = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := m.index[id]; dup {
			continue
		}
		m.index[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
}

func (m *Manager) read() []string {
	raw, err := m.store.Get(m.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		m.logger.Warn("could not read favorites, starting empty", zap.Error(err))
		return nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		m.logger.Warn("malformed favorites, starting empty", zap.Error(err))
		return nil
	}
	return ids
}

// Toggle flips the membership of id and persists the new set. It returns the
// new membership; a non-nil error only reports that persisting failed.
func (m *Manager) Toggle(id string) (bool, error) {
	m.mu.Lock()
	_, present := m.index[id]
	if present {
		delete(m.index, id)
		next := make([]string, 0, len(m.ids))
		for _, existing := range m.ids {
			if existing != id {
				next = append(next, existing)
			}
		}
		m.ids = next
	} else {
		m.index[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
	snapshot := append([]string(nil), m.ids...)
	m.mu.Unlock()

	favorite := !present
	m.publish(eventbus.FavoriteToggledEvent{ID: id, Favorite: favorite})

	if err := m.persist(snapshot); err != nil {
		m.logger.Warn("could not persist favorites", zap.String("id", id), zap.Error(err))
		m.publish(eventbus.StorageFailedEvent{Err: err})
		return favorite, err
	}
	return favorite, nil
}

func (m *Manager) persist(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := m.store.Set(m.key, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// IsFavorite reports whether id is in the set
func (m *Manager) IsFavorite(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[id]
	return ok
}

// IDs returns the favorite IDs in the order they were added
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.ids...)
}

// Len returns the number of favorites
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// Select returns the templates of all that are favorites, in the order of all
func (m *Manager) Select(all []domain.Template) []domain.Template {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Template, 0, len(m.ids))
	for _, t := range all {
		if _, ok := m.index[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
