package domain

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// UserRepository defines the persistence interface for users.
// This is a port - defined in domain, implemented in infrastructure.
type UserRepository interface {
	// Save persists a user (create or update). Last write wins.
	Save(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID.
	// Returns (nil, nil) if the user doesn't exist.
	FindByID(ctx context.Context, id types.UserID) (*User, error)

	// Query returns users satisfying spec, oldest first.
	Query(ctx context.Context, spec specification.Specification[*User], limit, offset int) ([]*User, error)

	// Count returns the number of users satisfying spec.
	Count(ctx context.Context, spec specification.Specification[*User]) (int, error)

	// Delete removes a user. Deleting an absent user is not an error.
	Delete(ctx context.Context, id types.UserID) error
}

// EmailIs matches users registered under email.
func EmailIs(email types.EmailAddress) specification.Specification[*User] {
	return specification.EqualTo(func(u *User) string { return u.Email().String() }, email.String())
}

// EmailTakenBy matches users other than id registered under email.
func EmailTakenBy(email types.EmailAddress, id types.UserID) specification.Specification[*User] {
	return specification.Of(EmailIs(email)).And(specification.Not(
		specification.EqualTo((*User).ID, id),
	))
}
