package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
)

// CreateBusinessCommand represents the intent to list a new business.
type CreateBusinessCommand struct {
	Name        domain.BusinessName
	Description *domain.BusinessDescription
	Contact     *domain.ContactInfo
	SocialMedia *domain.SocialMedia
	Features    *domain.BusinessFeatures
}

// CreateBusinessHandler handles the CreateBusinessCommand.
type CreateBusinessHandler struct {
	repo      domain.BusinessRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewCreateBusinessHandler(repo domain.BusinessRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *CreateBusinessHandler {
	return &CreateBusinessHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the create business use case.
func (h *CreateBusinessHandler) Handle(ctx context.Context, cmd CreateBusinessCommand) (*domain.Business, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Business, error) {
		business := domain.NewBusiness(cmd.Name, cmd.Description, cmd.Contact, cmd.SocialMedia, cmd.Features)
		if err := saveAndPublish(ctx, h.repo, h.publisher, business); err != nil {
			return nil, err
		}
		return business, nil
	})
}
