// Package domain contains the business entities and rules for users.
// This is the innermost layer - it has no dependencies on outer layers.
package domain

import (
	shareddomain "github.com/rai/clean-directory-go/modules/shared/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// User is the aggregate root for the user bounded context.
// The country is a term of the country taxonomy; demographics reference
// taxonomies directly.
type User struct {
	shareddomain.AggregateRoot[Event]

	id            types.UserID
	firstName     FirstName
	lastName      LastName
	email         types.EmailAddress
	countryTermID types.TermID
	demographics  *Demographics
}

// NewUser creates a User with validated inputs and queues UserCreated.
func NewUser(firstName FirstName, lastName LastName, email types.EmailAddress, countryTermID types.TermID, demographics *Demographics) *User {
	u := &User{
		id:            types.NewUserID(),
		firstName:     firstName,
		lastName:      lastName,
		email:         email,
		countryTermID: countryTermID,
		demographics:  demographics,
	}
	u.AggregateRoot = shareddomain.NewAggregateRoot(func(v uint64) Event {
		return UserCreated{
			Meta:          events.NewMeta(UserCreatedType, u.id.String(), v),
			FirstName:     firstName.String(),
			LastName:      lastName.String(),
			Email:         email.String(),
			CountryTermID: countryTermID.String(),
			Demographics:  demographicsMap(demographics),
		}
	})
	return u
}

// Reconstitute recreates a User from persistence.
// Used by repositories to rebuild aggregates from stored data.
func Reconstitute(
	id types.UserID,
	firstName FirstName,
	lastName LastName,
	email types.EmailAddress,
	countryTermID types.TermID,
	demographics *Demographics,
	version uint64,
	timestamps shareddomain.Timestamps,
	deletion shareddomain.Deletion,
) *User {
	return &User{
		AggregateRoot: shareddomain.ReconstituteRoot[Event](version, timestamps, deletion),
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		email:         email,
		countryTermID: countryTermID,
		demographics:  demographics,
	}
}

// Getters - expose state without allowing direct mutation

func (u *User) ID() types.UserID            { return u.id }
func (u *User) FirstName() FirstName        { return u.firstName }
func (u *User) LastName() LastName          { return u.lastName }
func (u *User) Email() types.EmailAddress   { return u.email }
func (u *User) CountryTermID() types.TermID { return u.countryTermID }
func (u *User) FullName() string            { return u.firstName.String() + " " + u.lastName.String() }

// Demographics returns the reported demographics, if any.
func (u *User) Demographics() (Demographics, bool) {
	if u.demographics == nil {
		return Demographics{}, false
	}
	return *u.demographics, true
}

// Business methods - each records exactly one event

func (u *User) SetFirstName(firstName FirstName) {
	previous := u.firstName
	u.firstName = firstName
	u.Record(func(v uint64) Event {
		return UserBioUpdated{
			Meta:      events.NewMeta(UserBioUpdatedType, u.id.String(), v),
			FirstName: events.NewChange(previous.String(), firstName.String()),
		}
	})
}

func (u *User) SetLastName(lastName LastName) {
	previous := u.lastName
	u.lastName = lastName
	u.Record(func(v uint64) Event {
		return UserBioUpdated{
			Meta:     events.NewMeta(UserBioUpdatedType, u.id.String(), v),
			LastName: events.NewChange(previous.String(), lastName.String()),
		}
	})
}

// SetCountry moves the user to another country term.
func (u *User) SetCountry(countryTermID types.TermID) {
	previous := u.countryTermID
	u.countryTermID = countryTermID
	u.Record(func(v uint64) Event {
		return UserBioUpdated{
			Meta:          events.NewMeta(UserBioUpdatedType, u.id.String(), v),
			CountryTermID: events.NewChange(previous.String(), countryTermID.String()),
		}
	})
}

// ChangeEmail changes the user's email address. Uniqueness is checked by
// the use case, which can see other users.
func (u *User) ChangeEmail(email types.EmailAddress) {
	previous := u.email
	u.email = email
	u.Record(func(v uint64) Event {
		return UserEmailChanged{
			Meta:  events.NewMeta(UserEmailChangedType, u.id.String(), v),
			Email: events.Change[string]{Previous: previous.String(), Current: email.String()},
		}
	})
}

// SetDemographics replaces all demographics at once.
func (u *User) SetDemographics(demographics Demographics) {
	previous := demographicsMap(u.demographics)
	u.demographics = &demographics
	u.Record(func(v uint64) Event {
		return UserDemographicsUpdated{
			Meta:         events.NewMeta(UserDemographicsUpdatedType, u.id.String(), v),
			Demographics: events.Change[map[string][]string]{Previous: previous, Current: demographics.Map()},
		}
	})
}

// SoftDelete marks the user deleted. It stays in the repository.
func (u *User) SoftDelete() {
	u.MarkDeleted(func(v uint64) Event {
		return UserSoftDeleted{Meta: events.NewMeta(UserSoftDeletedType, u.id.String(), v)}
	})
}

func (u *User) Restore() {
	u.AggregateRoot.Restore(func(v uint64) Event {
		return UserRestored{Meta: events.NewMeta(UserRestoredType, u.id.String(), v)}
	})
}

// Clone copies the persistent state. Pending events are not copied.
// Value objects are immutable, so a shallow copy is enough.
func (u *User) Clone() *User {
	c := *u
	c.AggregateRoot = u.Snapshot()
	return &c
}
