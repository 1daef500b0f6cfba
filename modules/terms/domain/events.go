package domain

import (
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

const (
	TermCreatedType     events.EventType = "term.created"
	TermUpdatedType     events.EventType = "term.updated"
	TermSoftDeletedType events.EventType = "term.soft_deleted"
	TermRestoredType    events.EventType = "term.restored"
	TermDeletedType     events.EventType = "term.deleted"
)

// Event is the closed set of term events.
type Event interface {
	events.Event
	isTermEvent()
}

type TermCreated struct {
	events.Meta
	TaxonomyID  string  `json:"taxonomy_id"`
	ParentID    *string `json:"parent_id,omitempty"`
	Name        string  `json:"name"`
	Visible     bool    `json:"visible"`
	Description *string `json:"description,omitempty"`
}

// TermUpdated carries the fields that changed. Exactly one is set per event.
type TermUpdated struct {
	events.Meta
	TaxonomyID  *events.Change[string]  `json:"taxonomy_id,omitempty"`
	ParentID    *events.Change[*string] `json:"parent_id,omitempty"`
	Name        *events.Change[string]  `json:"name,omitempty"`
	Visible     *events.Change[bool]    `json:"visible,omitempty"`
	Description *events.Change[*string] `json:"description,omitempty"`
}

type TermSoftDeleted struct {
	events.Meta
}

type TermRestored struct {
	events.Meta
}

// TermDeleted is published after a hard delete. The aggregate no longer
// exists, so it is built by the use case rather than queued by the aggregate.
type TermDeleted struct {
	events.Meta
}

func (TermCreated) isTermEvent()     {}
func (TermUpdated) isTermEvent()     {}
func (TermSoftDeleted) isTermEvent() {}
func (TermRestored) isTermEvent()    {}
func (TermDeleted) isTermEvent()     {}

func NewTermDeleted(id types.TermID, version uint64) TermDeleted {
	return TermDeleted{Meta: events.NewMeta(TermDeletedType, id.String(), version)}
}

func termIDString(id *types.TermID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func descriptionString(d *TermDescription) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
