// Package domain provides shared domain primitives.
package domain

import "github.com/rai/clean-directory-go/modules/shared/events"

// AggregateRoot carries the state every aggregate shares: a version counter,
// creation/update timestamps, soft-delete state and the queue of events not
// yet published. Embed it in aggregate structs.
//
// The version counts applied mutations, creation included: a new aggregate is
// at version 1 and each recorded change bumps it by exactly one. Every event
// carries the version the aggregate reached by producing it.
//
// Example:
//
//	func (b *Business) SetName(name BusinessName) {
//	    previous := b.name
//	    b.name = name
//	    b.Record(func(v uint64) Event {
//	        return NewBusinessDetailsUpdated(b.id, v, ...)
//	    })
//	}
type AggregateRoot[E events.Event] struct {
	version    uint64
	timestamps Timestamps
	deletion   Deletion
	pending    []E
}

// NewAggregateRoot starts a root for a freshly created aggregate and queues
// its creation event at version 1.
func NewAggregateRoot[E events.Event](created func(version uint64) E) AggregateRoot[E] {
	root := AggregateRoot[E]{
		version:    1,
		timestamps: NewTimestamps(),
	}
	root.pending = append(root.pending, created(root.version))
	return root
}

// ReconstituteRoot rebuilds a root from stored state. No events are queued.
func ReconstituteRoot[E events.Event](version uint64, timestamps Timestamps, deletion Deletion) AggregateRoot[E] {
	return AggregateRoot[E]{
		version:    version,
		timestamps: timestamps,
		deletion:   deletion,
	}
}

func (a *AggregateRoot[E]) Version() uint64        { return a.version }
func (a *AggregateRoot[E]) Timestamps() Timestamps { return a.timestamps }
func (a *AggregateRoot[E]) Deletion() Deletion     { return a.deletion }
func (a *AggregateRoot[E]) IsDeleted() bool        { return a.deletion.IsDeleted() }

// Record touches the aggregate and queues the event built for the new
// version. Call it once per state change, after the change is applied.
func (a *AggregateRoot[E]) Record(build func(version uint64) E) {
	a.timestamps.Touch()
	a.version++
	a.pending = append(a.pending, build(a.version))
}

// MarkDeleted soft-deletes the aggregate and records the given event.
func (a *AggregateRoot[E]) MarkDeleted(build func(version uint64) E) {
	a.deletion.MarkDeleted()
	a.Record(build)
}

// Restore clears the soft-delete state and records the given event.
func (a *AggregateRoot[E]) Restore(build func(version uint64) E) {
	a.deletion.Restore()
	a.Record(build)
}

// PendingEvents returns a copy of the queued events without draining them.
func (a *AggregateRoot[E]) PendingEvents() []E {
	out := make([]E, len(a.pending))
	copy(out, a.pending)
	return out
}

// TakeEvents returns the queued events in order and empties the queue.
func (a *AggregateRoot[E]) TakeEvents() []E {
	out := a.pending
	a.pending = nil
	return out
}

// Snapshot copies the persistent part of the root. Pending events are local
// to the in-flight use case and are never part of a snapshot.
func (a *AggregateRoot[E]) Snapshot() AggregateRoot[E] {
	return AggregateRoot[E]{
		version:    a.version,
		timestamps: a.timestamps,
		deletion:   a.deletion,
	}
}
