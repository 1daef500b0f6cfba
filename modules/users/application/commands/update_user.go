package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// UpdateUserCommand changes the fields that are set. Each set field is
// recorded as its own event, in field order.
type UpdateUserCommand struct {
	UserID        types.UserID
	FirstName     *domain.FirstName
	LastName      *domain.LastName
	CountryTermID *types.TermID
	Email         *types.EmailAddress
	Demographics  *domain.Demographics
}

// UpdateUserHandler handles the UpdateUserCommand.
type UpdateUserHandler struct {
	repo      domain.UserRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewUpdateUserHandler(repo domain.UserRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *UpdateUserHandler {
	return &UpdateUserHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the update user use case.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.User, error) {
		user, err := load(ctx, h.repo, cmd.UserID)
		if err != nil {
			return nil, err
		}

		if cmd.FirstName != nil {
			user.SetFirstName(*cmd.FirstName)
		}
		if cmd.LastName != nil {
			user.SetLastName(*cmd.LastName)
		}
		if cmd.CountryTermID != nil {
			user.SetCountry(*cmd.CountryTermID)
		}
		if cmd.Email != nil {
			if err := ensureEmailAvailable(ctx, h.repo, *cmd.Email, user.ID()); err != nil {
				return nil, err
			}
			user.ChangeEmail(*cmd.Email)
		}
		if cmd.Demographics != nil {
			user.SetDemographics(*cmd.Demographics)
		}

		if err := saveAndPublish(ctx, h.repo, h.publisher, user); err != nil {
			return nil, err
		}
		return user, nil
	})
}
