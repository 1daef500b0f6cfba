// Package domain contains the entities and rules for businesses listed in
// the directory.
package domain

import (
	shareddomain "github.com/rai/clean-directory-go/modules/shared/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// Business is the aggregate root for the businesses bounded context.
type Business struct {
	shareddomain.AggregateRoot[Event]

	id          types.BusinessID
	name        BusinessName
	description *BusinessDescription
	contact     *ContactInfo
	socialMedia *SocialMedia
	features    *BusinessFeatures
}

// NewBusiness creates a business with a fresh identity and queues
// BusinessCreated. Everything but the name is optional.
func NewBusiness(
	name BusinessName,
	description *BusinessDescription,
	contact *ContactInfo,
	socialMedia *SocialMedia,
	features *BusinessFeatures,
) *Business {
	b := &Business{
		id:          types.NewBusinessID(),
		name:        name,
		description: description,
		contact:     contact,
		socialMedia: socialMedia,
		features:    features,
	}
	b.AggregateRoot = shareddomain.NewAggregateRoot(func(v uint64) Event {
		return BusinessCreated{
			Meta:        events.NewMeta(BusinessCreatedType, b.id.String(), v),
			Name:        name.String(),
			Description: descriptionString(description),
			Contact:     contactSnapshot(contact),
			SocialMedia: socialMediaMap(socialMedia),
			Features:    featuresSnapshot(features),
		}
	})
	return b
}

// Reconstitute recreates a Business from persistence.
func Reconstitute(
	id types.BusinessID,
	name BusinessName,
	description *BusinessDescription,
	contact *ContactInfo,
	socialMedia *SocialMedia,
	features *BusinessFeatures,
	version uint64,
	timestamps shareddomain.Timestamps,
	deletion shareddomain.Deletion,
) *Business {
	return &Business{
		AggregateRoot: shareddomain.ReconstituteRoot[Event](version, timestamps, deletion),
		id:            id,
		name:          name,
		description:   description,
		contact:       contact,
		socialMedia:   socialMedia,
		features:      features,
	}
}

func (b *Business) ID() types.BusinessID { return b.id }
func (b *Business) Name() BusinessName   { return b.name }

func (b *Business) Description() (BusinessDescription, bool) {
	if b.description == nil {
		return BusinessDescription{}, false
	}
	return *b.description, true
}

func (b *Business) Contact() (ContactInfo, bool) {
	if b.contact == nil {
		return ContactInfo{}, false
	}
	return *b.contact, true
}

func (b *Business) SocialMedia() (SocialMedia, bool) {
	if b.socialMedia == nil {
		return SocialMedia{}, false
	}
	return *b.socialMedia, true
}

func (b *Business) Features() (BusinessFeatures, bool) {
	if b.features == nil {
		return BusinessFeatures{}, false
	}
	return *b.features, true
}

func (b *Business) SetName(name BusinessName) {
	previous := b.name
	b.name = name
	b.Record(func(v uint64) Event {
		return BusinessDetailsUpdated{
			Meta: events.NewMeta(BusinessDetailsUpdatedType, b.id.String(), v),
			Name: events.NewChange(previous.String(), name.String()),
		}
	})
}

func (b *Business) SetDescription(description BusinessDescription) {
	previous := descriptionString(b.description)
	b.description = &description
	b.Record(func(v uint64) Event {
		return BusinessDetailsUpdated{
			Meta:        events.NewMeta(BusinessDetailsUpdatedType, b.id.String(), v),
			Description: events.NewChange(previous, descriptionString(b.description)),
		}
	})
}

func (b *Business) SetContact(contact ContactInfo) {
	previous := contactSnapshot(b.contact)
	b.contact = &contact
	b.Record(func(v uint64) Event {
		return BusinessContactUpdated{
			Meta:    events.NewMeta(BusinessContactUpdatedType, b.id.String(), v),
			Contact: events.Change[*ContactSnapshot]{Previous: previous, Current: contactSnapshot(b.contact)},
		}
	})
}

func (b *Business) SetSocialMedia(socialMedia SocialMedia) {
	previous := socialMediaMap(b.socialMedia)
	b.socialMedia = &socialMedia
	b.Record(func(v uint64) Event {
		return BusinessSocialMediaUpdated{
			Meta:        events.NewMeta(BusinessSocialMediaUpdatedType, b.id.String(), v),
			SocialMedia: events.Change[map[string]string]{Previous: previous, Current: socialMedia.Map()},
		}
	})
}

func (b *Business) SetFeatures(features BusinessFeatures) {
	previous := featuresSnapshot(b.features)
	b.features = &features
	b.Record(func(v uint64) Event {
		return BusinessFeaturesUpdated{
			Meta:     events.NewMeta(BusinessFeaturesUpdatedType, b.id.String(), v),
			Features: events.Change[*FeaturesSnapshot]{Previous: previous, Current: featuresSnapshot(b.features)},
		}
	})
}

// SoftDelete marks the business deleted. It stays in the repository.
func (b *Business) SoftDelete() {
	b.MarkDeleted(func(v uint64) Event {
		return BusinessSoftDeleted{Meta: events.NewMeta(BusinessSoftDeletedType, b.id.String(), v)}
	})
}

// Restore clears a soft delete.
func (b *Business) Restore() {
	b.AggregateRoot.Restore(func(v uint64) Event {
		return BusinessRestored{Meta: events.NewMeta(BusinessRestoredType, b.id.String(), v)}
	})
}

// Clone copies the persistent state. Pending events are not copied.
// Value objects are immutable, so sharing them is safe.
func (b *Business) Clone() *Business {
	c := *b
	c.AggregateRoot = b.Snapshot()
	return &c
}
