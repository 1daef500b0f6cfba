package domain

import (
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

const (
	BusinessCreatedType            events.EventType = "business.created"
	BusinessDetailsUpdatedType     events.EventType = "business.details_updated"
	BusinessContactUpdatedType     events.EventType = "business.contact_updated"
	BusinessSocialMediaUpdatedType events.EventType = "business.social_media_updated"
	BusinessFeaturesUpdatedType    events.EventType = "business.features_updated"
	BusinessSoftDeletedType        events.EventType = "business.soft_deleted"
	BusinessRestoredType           events.EventType = "business.restored"
	BusinessDeletedType            events.EventType = "business.deleted"
)

// Event is the closed set of business events.
type Event interface {
	events.Event
	isBusinessEvent()
}

type BusinessCreated struct {
	events.Meta
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Contact     *ContactSnapshot  `json:"contact,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`
	Features    *FeaturesSnapshot `json:"features,omitempty"`
}

// BusinessDetailsUpdated carries a changed name or description. Exactly one
// is set per event.
type BusinessDetailsUpdated struct {
	events.Meta
	Name        *events.Change[string]  `json:"name,omitempty"`
	Description *events.Change[*string] `json:"description,omitempty"`
}

type BusinessContactUpdated struct {
	events.Meta
	Contact events.Change[*ContactSnapshot] `json:"contact"`
}

type BusinessSocialMediaUpdated struct {
	events.Meta
	SocialMedia events.Change[map[string]string] `json:"social_media"`
}

type BusinessFeaturesUpdated struct {
	events.Meta
	Features events.Change[*FeaturesSnapshot] `json:"features"`
}

type BusinessSoftDeleted struct {
	events.Meta
}

type BusinessRestored struct {
	events.Meta
}

// BusinessDeleted is published after a hard delete.
type BusinessDeleted struct {
	events.Meta
}

func (BusinessCreated) isBusinessEvent()            {}
func (BusinessDetailsUpdated) isBusinessEvent()     {}
func (BusinessContactUpdated) isBusinessEvent()     {}
func (BusinessSocialMediaUpdated) isBusinessEvent() {}
func (BusinessFeaturesUpdated) isBusinessEvent()    {}
func (BusinessSoftDeleted) isBusinessEvent()        {}
func (BusinessRestored) isBusinessEvent()           {}
func (BusinessDeleted) isBusinessEvent()            {}

func NewBusinessDeleted(id types.BusinessID, version uint64) BusinessDeleted {
	return BusinessDeleted{Meta: events.NewMeta(BusinessDeletedType, id.String(), version)}
}

func descriptionString(d *BusinessDescription) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func contactSnapshot(c *ContactInfo) *ContactSnapshot {
	if c == nil {
		return nil
	}
	s := c.Snapshot()
	return &s
}

func socialMediaMap(s *SocialMedia) map[string]string {
	if s == nil {
		return nil
	}
	return s.Map()
}

func featuresSnapshot(f *BusinessFeatures) *FeaturesSnapshot {
	if f == nil {
		return nil
	}
	s := f.Snapshot()
	return &s
}
