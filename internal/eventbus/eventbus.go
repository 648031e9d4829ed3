package eventbus

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"boundless/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventWindowChanged   = domain.EventWindowChanged
	EventBoundaryReached = domain.EventBoundaryReached
	EventRecentered      = domain.EventRecentered
	EventRegionCollapsed = domain.EventRegionCollapsed
	EventPageChanged     = domain.EventPageChanged
	EventRefreshStarted  = domain.EventRefreshStarted
	EventRefreshEnded    = domain.EventRefreshEnded
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventError           = domain.EventError
)

// Re-export domain event types
type WindowChangedEvent = domain.WindowChangedEvent
type BoundaryReachedEvent = domain.BoundaryReachedEvent
type RecenteredEvent = domain.RecenteredEvent
type RegionCollapsedEvent = domain.RegionCollapsedEvent
type PageChangedEvent = domain.PageChangedEvent
type RefreshStartedEvent = domain.RefreshStartedEvent
type RefreshEndedEvent = domain.RefreshEndedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus. Dispatch is synchronous:
// handlers run inline on the publishing goroutine, which for the windowing
// engines is always the UI thread. Handlers must not publish re-entrantly
// from themselves in a cycle.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventWindowChanged, EventRecentered:
		// High-frequency during scrolling; don't log
	default:
		log.WithField("event", event.Type()).Debug("eventbus: publishing")
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
