package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// UpdateBusinessCommand changes the fields that are set; nil fields are left
// untouched. Fields are applied in declaration order, one event each.
type UpdateBusinessCommand struct {
	BusinessID  types.BusinessID
	Name        *domain.BusinessName
	Description *domain.BusinessDescription
	Contact     *domain.ContactInfo
	SocialMedia *domain.SocialMedia
	Features    *domain.BusinessFeatures
}

// UpdateBusinessHandler handles the UpdateBusinessCommand.
type UpdateBusinessHandler struct {
	repo      domain.BusinessRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewUpdateBusinessHandler(repo domain.BusinessRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *UpdateBusinessHandler {
	return &UpdateBusinessHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *UpdateBusinessHandler) Handle(ctx context.Context, cmd UpdateBusinessCommand) (*domain.Business, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Business, error) {
		business, err := load(ctx, h.repo, cmd.BusinessID)
		if err != nil {
			return nil, err
		}

		if cmd.Name != nil {
			business.SetName(*cmd.Name)
		}
		if cmd.Description != nil {
			business.SetDescription(*cmd.Description)
		}
		if cmd.Contact != nil {
			business.SetContact(*cmd.Contact)
		}
		if cmd.SocialMedia != nil {
			business.SetSocialMedia(*cmd.SocialMedia)
		}
		if cmd.Features != nil {
			business.SetFeatures(*cmd.Features)
		}

		if err := saveAndPublish(ctx, h.repo, h.publisher, business); err != nil {
			return nil, err
		}
		return business, nil
	})
}
