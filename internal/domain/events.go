package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogPopulated   EventType = "CatalogPopulated"
	EventCatalogFetchFailed EventType = "CatalogFetchFailed"
	EventFavoriteToggled    EventType = "FavoriteToggled"
	EventStorageFailed      EventType = "StorageFailed"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogPopulatedEvent is emitted once when the template cache is filled
type CatalogPopulatedEvent struct {
	Count int
}

func (e CatalogPopulatedEvent) Type() EventType { return EventCatalogPopulated }

// CatalogFetchFailedEvent is emitted when the single fetch fails and the
// cache is populated with an empty list instead
type CatalogFetchFailedEvent struct {
	Err error
}

func (e CatalogFetchFailedEvent) Type() EventType { return EventCatalogFetchFailed }

// FavoriteToggledEvent is emitted after a favorite is added or removed
type FavoriteToggledEvent struct {
	ID       string
	Favorite bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// StorageFailedEvent is emitted when favorites could not be persisted
type StorageFailedEvent struct {
	Err error
}

func (e StorageFailedEvent) Type() EventType { return EventStorageFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
