package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// CreateUserCommand represents the intent to create a new user.
type CreateUserCommand struct {
	FirstName     domain.FirstName
	LastName      domain.LastName
	Email         types.EmailAddress
	CountryTermID types.TermID
	Demographics  *domain.Demographics
}

// CreateUserHandler handles the CreateUserCommand.
type CreateUserHandler struct {
	repo      domain.UserRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewCreateUserHandler(repo domain.UserRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *CreateUserHandler {
	return &CreateUserHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the create user use case.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.User, error) {
		// Check for existing email
		if err := ensureEmailAvailable(ctx, h.repo, cmd.Email, types.UserID{}); err != nil {
			return nil, err
		}

		user := domain.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, cmd.CountryTermID, cmd.Demographics)

		// Persist, then publish UserCreated
		if err := saveAndPublish(ctx, h.repo, h.publisher, user); err != nil {
			return nil, err
		}
		return user, nil
	})
}
