package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// DeleteUserCommand represents the intent to remove a user permanently.
type DeleteUserCommand struct {
	UserID types.UserID
}

// DeleteUserHandler handles the DeleteUserCommand.
type DeleteUserHandler struct {
	repo      domain.UserRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewDeleteUserHandler(repo domain.UserRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *DeleteUserHandler {
	return &DeleteUserHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the delete user use case.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		// Verify user exists
		user, err := load(ctx, h.repo, cmd.UserID)
		if err != nil {
			return err
		}

		if err := h.repo.Delete(ctx, user.ID()); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}

		// Publish domain event
		return publish(ctx, h.publisher, domain.NewUserDeleted(user.ID(), user.Version()))
	})
}
