package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWindowChanged   EventType = "WindowChanged"
	EventBoundaryReached EventType = "BoundaryReached"
	EventRecentered      EventType = "Recentered"
	EventRegionCollapsed EventType = "RegionCollapsed"
	EventPageChanged     EventType = "PageChanged"
	EventRefreshStarted  EventType = "RefreshStarted"
	EventRefreshEnded    EventType = "RefreshEnded"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WindowChangedEvent is emitted when the set of materialized entries changes
type WindowChangedEvent struct {
	Keys []any // window keys in screen order
}

func (e WindowChangedEvent) Type() EventType { return EventWindowChanged }

// BoundaryReachedEvent is emitted when the oracle reports no more content
// past one edge of the window
type BoundaryReachedEvent struct {
	EdgeKey  any
	Trailing bool // true for the next-direction edge, false for prev
}

func (e BoundaryReachedEvent) Type() EventType { return EventBoundaryReached }

// RecenteredEvent is emitted after a silent coordinate-space shift
type RecenteredEvent struct {
	Delta float64
}

func (e RecenteredEvent) Type() EventType { return EventRecentered }

// RegionCollapsedEvent is emitted when the content region is shrunk because
// all remaining content fits inside the viewport
type RegionCollapsedEvent struct {
	Extent float64
}

func (e RegionCollapsedEvent) Type() EventType { return EventRegionCollapsed }

// PageChangedEvent is emitted when a page transition completes
type PageChangedEvent struct {
	FromKey any
	ToKey   any
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// RefreshStartedEvent is emitted when a refresh gesture is accepted
type RefreshStartedEvent struct{}

func (e RefreshStartedEvent) Type() EventType { return EventRefreshStarted }

// RefreshEndedEvent is emitted when the refresh completion callback fires
type RefreshEndedEvent struct{}

func (e RefreshEndedEvent) Type() EventType { return EventRefreshEnded }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a host-protocol error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
