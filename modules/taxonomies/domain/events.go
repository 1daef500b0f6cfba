package domain

import (
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

const (
	TaxonomyCreatedType     events.EventType = "taxonomy.created"
	TaxonomyUpdatedType     events.EventType = "taxonomy.updated"
	TaxonomySoftDeletedType events.EventType = "taxonomy.soft_deleted"
	TaxonomyRestoredType    events.EventType = "taxonomy.restored"
	TaxonomyDeletedType     events.EventType = "taxonomy.deleted"
)

// Event is the closed set of taxonomy events.
type Event interface {
	events.Event
	isTaxonomyEvent()
}

type TaxonomyCreated struct {
	events.Meta
	ParentID    *string `json:"parent_id,omitempty"`
	Name        string  `json:"name"`
	Visible     bool    `json:"visible"`
	Description *string `json:"description,omitempty"`
}

// TaxonomyUpdated carries the fields that changed. Exactly one is set per event.
type TaxonomyUpdated struct {
	events.Meta
	ParentID    *events.Change[*string] `json:"parent_id,omitempty"`
	Name        *events.Change[string]  `json:"name,omitempty"`
	Visible     *events.Change[bool]    `json:"visible,omitempty"`
	Description *events.Change[*string] `json:"description,omitempty"`
}

type TaxonomySoftDeleted struct {
	events.Meta
}

type TaxonomyRestored struct {
	events.Meta
}

// TaxonomyDeleted is published after a hard delete. The aggregate no longer
// exists, so it is built by the use case rather than queued by the aggregate.
type TaxonomyDeleted struct {
	events.Meta
}

func (TaxonomyCreated) isTaxonomyEvent()     {}
func (TaxonomyUpdated) isTaxonomyEvent()     {}
func (TaxonomySoftDeleted) isTaxonomyEvent() {}
func (TaxonomyRestored) isTaxonomyEvent()    {}
func (TaxonomyDeleted) isTaxonomyEvent()     {}

func NewTaxonomyDeleted(id types.TaxonomyID, version uint64) TaxonomyDeleted {
	return TaxonomyDeleted{Meta: events.NewMeta(TaxonomyDeletedType, id.String(), version)}
}

func idString(id *types.TaxonomyID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func descriptionString(d *TaxonomyDescription) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
