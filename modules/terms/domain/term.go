// Package domain contains the business entities and rules for terms.
// A term is one value of a taxonomy, e.g. "Germany" in "Country". Terms
// may nest under a parent term of the same taxonomy.
package domain

import (
	shareddomain "github.com/rai/clean-directory-go/modules/shared/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// Term is the aggregate root for the terms bounded context.
type Term struct {
	shareddomain.AggregateRoot[Event]

	id          types.TermID
	taxonomyID  types.TaxonomyID
	parentID    *types.TermID
	name        TermName
	visible     bool
	description *TermDescription
}

// NewTerm creates a term in the given taxonomy and queues TermCreated.
func NewTerm(taxonomyID types.TaxonomyID, parentID *types.TermID, name TermName, visible bool, description *TermDescription) *Term {
	t := &Term{
		id:          types.NewTermID(),
		taxonomyID:  taxonomyID,
		parentID:    parentID,
		name:        name,
		visible:     visible,
		description: description,
	}
	t.AggregateRoot = shareddomain.NewAggregateRoot(func(v uint64) Event {
		return TermCreated{
			Meta:        events.NewMeta(TermCreatedType, t.id.String(), v),
			TaxonomyID:  taxonomyID.String(),
			ParentID:    termIDString(parentID),
			Name:        name.String(),
			Visible:     visible,
			Description: descriptionString(description),
		}
	})
	return t
}

// Reconstitute recreates a Term from persistence.
func Reconstitute(
	id types.TermID,
	taxonomyID types.TaxonomyID,
	parentID *types.TermID,
	name TermName,
	visible bool,
	description *TermDescription,
	version uint64,
	timestamps shareddomain.Timestamps,
	deletion shareddomain.Deletion,
) *Term {
	return &Term{
		AggregateRoot: shareddomain.ReconstituteRoot[Event](version, timestamps, deletion),
		id:            id,
		taxonomyID:    taxonomyID,
		parentID:      parentID,
		name:          name,
		visible:       visible,
		description:   description,
	}
}

func (t *Term) ID() types.TermID             { return t.id }
func (t *Term) TaxonomyID() types.TaxonomyID { return t.taxonomyID }
func (t *Term) Name() TermName               { return t.name }
func (t *Term) Visible() bool                { return t.visible }

func (t *Term) ParentID() (types.TermID, bool) {
	if t.parentID == nil {
		return types.TermID{}, false
	}
	return *t.parentID, true
}

func (t *Term) Description() (TermDescription, bool) {
	if t.description == nil {
		return TermDescription{}, false
	}
	return *t.description, true
}

// SetTaxonomyID moves the term to another taxonomy.
func (t *Term) SetTaxonomyID(taxonomyID types.TaxonomyID) {
	previous := t.taxonomyID
	t.taxonomyID = taxonomyID
	t.Record(func(v uint64) Event {
		return TermUpdated{
			Meta:       events.NewMeta(TermUpdatedType, t.id.String(), v),
			TaxonomyID: events.NewChange(previous.String(), taxonomyID.String()),
		}
	})
}

func (t *Term) SetParentID(parentID types.TermID) {
	previous := termIDString(t.parentID)
	t.parentID = &parentID
	t.Record(func(v uint64) Event {
		return TermUpdated{
			Meta:     events.NewMeta(TermUpdatedType, t.id.String(), v),
			ParentID: events.NewChange(previous, termIDString(t.parentID)),
		}
	})
}

func (t *Term) SetName(name TermName) {
	previous := t.name
	t.name = name
	t.Record(func(v uint64) Event {
		return TermUpdated{
			Meta: events.NewMeta(TermUpdatedType, t.id.String(), v),
			Name: events.NewChange(previous.String(), name.String()),
		}
	})
}

func (t *Term) SetVisible(visible bool) {
	previous := t.visible
	t.visible = visible
	t.Record(func(v uint64) Event {
		return TermUpdated{
			Meta:    events.NewMeta(TermUpdatedType, t.id.String(), v),
			Visible: events.NewChange(previous, visible),
		}
	})
}

func (t *Term) SetDescription(description TermDescription) {
	previous := descriptionString(t.description)
	t.description = &description
	t.Record(func(v uint64) Event {
		return TermUpdated{
			Meta:        events.NewMeta(TermUpdatedType, t.id.String(), v),
			Description: events.NewChange(previous, descriptionString(t.description)),
		}
	})
}

func (t *Term) SoftDelete() {
	t.MarkDeleted(func(v uint64) Event {
		return TermSoftDeleted{Meta: events.NewMeta(TermSoftDeletedType, t.id.String(), v)}
	})
}

func (t *Term) Restore() {
	t.AggregateRoot.Restore(func(v uint64) Event {
		return TermRestored{Meta: events.NewMeta(TermRestoredType, t.id.String(), v)}
	})
}

// Clone copies the persistent state. Pending events are not copied.
func (t *Term) Clone() *Term {
	c := *t
	c.AggregateRoot = t.Snapshot()
	return &c
}
