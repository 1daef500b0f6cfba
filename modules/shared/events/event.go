// Package events provides domain event infrastructure shared by all modules.
// Each bounded context defines its own closed event set on top of Meta and
// publishes it through a bus typed to that set.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names an event, e.g. "business.created".
type EventType string

func (t EventType) String() string { return string(t) }

// Event represents a domain event that occurred in the system.
// Events are immutable facts about something that happened.
type Event interface {
	// EventID returns the unique identifier for this event instance.
	EventID() string
	// EventType returns the type name of the event.
	EventType() EventType
	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
	// AggregateVersion returns the aggregate version after the change.
	AggregateVersion() uint64
}

// Meta provides common event fields. Embed this in concrete event types.
type Meta struct {
	ID        string    `json:"event_id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"occurred_at"`
	Aggregate string    `json:"aggregate_id"`
	Version   uint64    `json:"aggregate_version"`
}

// NewMeta stamps a new event for the aggregate at the given version.
func NewMeta(eventType EventType, aggregateID string, version uint64) Meta {
	return Meta{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Aggregate: aggregateID,
		Version:   version,
	}
}

func (m Meta) EventID() string          { return m.ID }
func (m Meta) EventType() EventType     { return m.Type }
func (m Meta) OccurredAt() time.Time    { return m.Timestamp }
func (m Meta) AggregateID() string      { return m.Aggregate }
func (m Meta) AggregateVersion() uint64 { return m.Version }

// Publisher publishes a batch of domain events in order.
type Publisher[E Event] interface {
	Publish(ctx context.Context, evts ...E) error
}

// Handler consumes one domain event. Handlers perform side effects only;
// they must not mutate the aggregate or its repository.
type Handler[E Event] interface {
	Handle(ctx context.Context, event E) error
}
