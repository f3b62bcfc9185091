package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"memegrip/internal/eventbus"
)

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogPopulated,
	eventbus.EventCatalogFetchFailed,
	eventbus.EventFavoriteToggled,
	eventbus.EventStorageFailed,
	eventbus.EventConfigSaved,
}

// ForwardEvents relays bus events to send as EventMsg through a buffered
// channel so bus handlers never block on the program. The returned function
// unsubscribes and stops the relay.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg), logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	events := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})

	forward := func(e eventbus.DomainEvent) {
		select {
		case <-done:
			return
		default:
		}
		select {
		case events <- e:
		default:
			logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}

	unsubscribe := make([]func(), 0, len(forwardedEvents))
	for _, t := range forwardedEvents {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, forward))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case e := <-events:
				send(EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, u := range unsubscribe {
				u()
			}
			close(done)
			wg.Wait()
		})
	}
}
