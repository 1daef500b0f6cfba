// Package commands contains write use cases for the users module.
// Commands run inside the module's transaction scope and return the
// aggregate they changed.
package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

func load(ctx context.Context, repo domain.UserRepository, id types.UserID) (*domain.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ensureEmailAvailable fails with ErrEmailExists when a user other than
// owner is registered under email. A zero owner checks against everyone.
func ensureEmailAvailable(ctx context.Context, repo domain.UserRepository, email types.EmailAddress, owner types.UserID) error {
	n, err := repo.Count(ctx, domain.EmailTakenBy(email, owner))
	if err != nil {
		return fmt.Errorf("checking email existence: %w", err)
	}
	if n > 0 {
		return domain.ErrEmailExists
	}
	return nil
}

func saveAndPublish(ctx context.Context, repo domain.UserRepository, publisher events.Publisher[domain.Event], user *domain.User) error {
	if err := repo.Save(ctx, user); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return publish(ctx, publisher, user.TakeEvents()...)
}

// publish reports a failed dispatch as a conflict. The save stays.
func publish(ctx context.Context, publisher events.Publisher[domain.Event], evts ...domain.Event) error {
	if err := publisher.Publish(ctx, evts...); err != nil {
		return types.Conflict("publishing user events", err)
	}
	return nil
}
