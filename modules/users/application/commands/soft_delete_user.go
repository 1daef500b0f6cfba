package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// SoftDeleteUserCommand marks a user deleted. The user stays readable by id.
type SoftDeleteUserCommand struct {
	UserID types.UserID
}

type SoftDeleteUserHandler struct {
	repo      domain.UserRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewSoftDeleteUserHandler(repo domain.UserRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *SoftDeleteUserHandler {
	return &SoftDeleteUserHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *SoftDeleteUserHandler) Handle(ctx context.Context, cmd SoftDeleteUserCommand) (*domain.User, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.User, error) {
		// Verify user exists
		user, err := load(ctx, h.repo, cmd.UserID)
		if err != nil {
			return nil, err
		}

		user.SoftDelete()

		if err := saveAndPublish(ctx, h.repo, h.publisher, user); err != nil {
			return nil, err
		}
		return user, nil
	})
}

// RestoreUserCommand clears a soft delete.
type RestoreUserCommand struct {
	UserID types.UserID
}

type RestoreUserHandler struct {
	repo      domain.UserRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewRestoreUserHandler(repo domain.UserRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *RestoreUserHandler {
	return &RestoreUserHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *RestoreUserHandler) Handle(ctx context.Context, cmd RestoreUserCommand) (*domain.User, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.User, error) {
		user, err := load(ctx, h.repo, cmd.UserID)
		if err != nil {
			return nil, err
		}

		user.Restore()

		if err := saveAndPublish(ctx, h.repo, h.publisher, user); err != nil {
			return nil, err
		}
		return user, nil
	})
}
