// Package domain contains the business entities and rules for taxonomies.
// A taxonomy is a named classification (e.g. "Country", "Industry") whose
// values are terms.
package domain

import (
	shareddomain "github.com/rai/clean-directory-go/modules/shared/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// Taxonomy is the aggregate root for the taxonomies bounded context.
type Taxonomy struct {
	shareddomain.AggregateRoot[Event]

	id          types.TaxonomyID
	parentID    *types.TaxonomyID
	name        TaxonomyName
	visible     bool
	description *TaxonomyDescription
}

// NewTaxonomy creates a taxonomy with a fresh identity and queues
// TaxonomyCreated.
func NewTaxonomy(parentID *types.TaxonomyID, name TaxonomyName, visible bool, description *TaxonomyDescription) *Taxonomy {
	t := &Taxonomy{
		id:          types.NewTaxonomyID(),
		parentID:    parentID,
		name:        name,
		visible:     visible,
		description: description,
	}
	t.AggregateRoot = shareddomain.NewAggregateRoot(func(v uint64) Event {
		return TaxonomyCreated{
			Meta:        events.NewMeta(TaxonomyCreatedType, t.id.String(), v),
			ParentID:    idString(parentID),
			Name:        name.String(),
			Visible:     visible,
			Description: descriptionString(description),
		}
	})
	return t
}

// Reconstitute recreates a Taxonomy from persistence.
func Reconstitute(
	id types.TaxonomyID,
	parentID *types.TaxonomyID,
	name TaxonomyName,
	visible bool,
	description *TaxonomyDescription,
	version uint64,
	timestamps shareddomain.Timestamps,
	deletion shareddomain.Deletion,
) *Taxonomy {
	return &Taxonomy{
		AggregateRoot: shareddomain.ReconstituteRoot[Event](version, timestamps, deletion),
		id:            id,
		parentID:      parentID,
		name:          name,
		visible:       visible,
		description:   description,
	}
}

func (t *Taxonomy) ID() types.TaxonomyID { return t.id }
func (t *Taxonomy) Name() TaxonomyName   { return t.name }
func (t *Taxonomy) Visible() bool        { return t.visible }

// ParentID returns the parent taxonomy, if any.
func (t *Taxonomy) ParentID() (types.TaxonomyID, bool) {
	if t.parentID == nil {
		return types.TaxonomyID{}, false
	}
	return *t.parentID, true
}

// Description returns the description, if any.
func (t *Taxonomy) Description() (TaxonomyDescription, bool) {
	if t.description == nil {
		return TaxonomyDescription{}, false
	}
	return *t.description, true
}

func (t *Taxonomy) SetParentID(parentID types.TaxonomyID) {
	previous := idString(t.parentID)
	t.parentID = &parentID
	t.Record(func(v uint64) Event {
		return TaxonomyUpdated{
			Meta:     events.NewMeta(TaxonomyUpdatedType, t.id.String(), v),
			ParentID: events.NewChange(previous, idString(t.parentID)),
		}
	})
}

func (t *Taxonomy) SetName(name TaxonomyName) {
	previous := t.name
	t.name = name
	t.Record(func(v uint64) Event {
		return TaxonomyUpdated{
			Meta: events.NewMeta(TaxonomyUpdatedType, t.id.String(), v),
			Name: events.NewChange(previous.String(), name.String()),
		}
	})
}

func (t *Taxonomy) SetVisible(visible bool) {
	previous := t.visible
	t.visible = visible
	t.Record(func(v uint64) Event {
		return TaxonomyUpdated{
			Meta:    events.NewMeta(TaxonomyUpdatedType, t.id.String(), v),
			Visible: events.NewChange(previous, visible),
		}
	})
}

func (t *Taxonomy) SetDescription(description TaxonomyDescription) {
	previous := descriptionString(t.description)
	t.description = &description
	t.Record(func(v uint64) Event {
		return TaxonomyUpdated{
			Meta:        events.NewMeta(TaxonomyUpdatedType, t.id.String(), v),
			Description: events.NewChange(previous, descriptionString(t.description)),
		}
	})
}

// SoftDelete marks the taxonomy deleted. It stays in the repository.
func (t *Taxonomy) SoftDelete() {
	t.MarkDeleted(func(v uint64) Event {
		return TaxonomySoftDeleted{Meta: events.NewMeta(TaxonomySoftDeletedType, t.id.String(), v)}
	})
}

// Restore clears a soft delete.
func (t *Taxonomy) Restore() {
	t.AggregateRoot.Restore(func(v uint64) Event {
		return TaxonomyRestored{Meta: events.NewMeta(TaxonomyRestoredType, t.id.String(), v)}
	})
}

// Clone copies the persistent state. Pending events are not copied.
func (t *Taxonomy) Clone() *Taxonomy {
	c := *t
	c.AggregateRoot = t.Snapshot()
	return &c
}
