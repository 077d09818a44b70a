// Package events defines the domain events exchanged between modules and
// re-exports the platform event bus types for convenience.
package events

import (
	platformevents "vehicle_advisor_backend/platform/events"
)

// Re-export platform event types so modules only import internal/events.
type (
	Event       = platformevents.Event
	BaseEvent   = platformevents.BaseEvent
	Handler     = platformevents.Handler
	HandlerFunc = platformevents.HandlerFunc
	Bus         = platformevents.Bus
	InMemoryBus = platformevents.InMemoryBus
)

// NewBaseEvent creates a base event with the current timestamp.
var NewBaseEvent = platformevents.NewBaseEvent

// NewInMemoryBus creates an in-process event bus.
var NewInMemoryBus = platformevents.NewInMemoryBus

// Event names.
const (
	RecommendationsGeneratedName = "chat.recommendations_generated"
	ProfileUpdatedName           = "chat.profile_updated"
)

// RecommendationsGenerated is published after a chat turn produces a
// scored vehicle ranking for the user.
type RecommendationsGenerated struct {
	BaseEvent
	SessionID  string   `json:"session_id"`
	RequestID  string   `json:"request_id,omitempty"`
	VehicleIDs []string `json:"vehicle_ids"`
	Method     string   `json:"method"`
}

// EventName returns the unique event identifier.
func (e RecommendationsGenerated) EventName() string {
	return RecommendationsGeneratedName
}

// ProfileUpdated is published when message extraction changes the user
// profile for a session.
type ProfileUpdated struct {
	BaseEvent
	SessionID     string   `json:"session_id"`
	UpdatedFields []string `json:"updated_fields"`
}

// EventName returns the unique event identifier.
func (e ProfileUpdated) EventName() string {
	return ProfileUpdatedName
}
