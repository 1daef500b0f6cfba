package domain

import (
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// Domain events for the users bounded context.
// Events represent facts about what happened in the domain.

const (
	UserCreatedType             events.EventType = "user.created"
	UserBioUpdatedType          events.EventType = "user.bio_updated"
	UserEmailChangedType        events.EventType = "user.email_changed"
	UserDemographicsUpdatedType events.EventType = "user.demographics_updated"
	UserSoftDeletedType         events.EventType = "user.soft_deleted"
	UserRestoredType            events.EventType = "user.restored"
	UserDeletedType             events.EventType = "user.deleted"
)

// Event is the closed set of user events.
type Event interface {
	events.Event
	isUserEvent()
}

// UserCreated is published when a new user is created.
type UserCreated struct {
	events.Meta
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Email         string              `json:"email"`
	CountryTermID string              `json:"country_term_id"`
	Demographics  map[string][]string `json:"demographics,omitempty"`
}

// UserBioUpdated carries one changed field of the user's bio.
type UserBioUpdated struct {
	events.Meta
	FirstName     *events.Change[string] `json:"first_name,omitempty"`
	LastName      *events.Change[string] `json:"last_name,omitempty"`
	CountryTermID *events.Change[string] `json:"country_term_id,omitempty"`
}

type UserEmailChanged struct {
	events.Meta
	Email events.Change[string] `json:"email"`
}

type UserDemographicsUpdated struct {
	events.Meta
	Demographics events.Change[map[string][]string] `json:"demographics"`
}

type UserSoftDeleted struct {
	events.Meta
}

type UserRestored struct {
	events.Meta
}

// UserDeleted is published after a hard delete, at the version the user had
// when it was removed.
type UserDeleted struct {
	events.Meta
}

func (UserCreated) isUserEvent()             {}
func (UserBioUpdated) isUserEvent()          {}
func (UserEmailChanged) isUserEvent()        {}
func (UserDemographicsUpdated) isUserEvent() {}
func (UserSoftDeleted) isUserEvent()         {}
func (UserRestored) isUserEvent()            {}
func (UserDeleted) isUserEvent()             {}

func NewUserDeleted(id types.UserID, version uint64) UserDeleted {
	return UserDeleted{Meta: events.NewMeta(UserDeletedType, id.String(), version)}
}

func demographicsMap(d *Demographics) map[string][]string {
	if d == nil {
		return nil
	}
	return d.Map()
}
