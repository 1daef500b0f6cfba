package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// CreateTaxonomyCommand represents the intent to create a taxonomy.
type CreateTaxonomyCommand struct {
	ParentID    *types.TaxonomyID
	Name        domain.TaxonomyName
	Visible     bool
	Description *domain.TaxonomyDescription
}

// CreateTaxonomyHandler handles the CreateTaxonomyCommand.
type CreateTaxonomyHandler struct {
	repo      domain.TaxonomyRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewCreateTaxonomyHandler(repo domain.TaxonomyRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *CreateTaxonomyHandler {
	return &CreateTaxonomyHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the create taxonomy use case.
func (h *CreateTaxonomyHandler) Handle(ctx context.Context, cmd CreateTaxonomyCommand) (*domain.Taxonomy, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Taxonomy, error) {
		taxonomy := domain.NewTaxonomy(cmd.ParentID, cmd.Name, cmd.Visible, cmd.Description)
		if err := saveAndPublish(ctx, h.repo, h.publisher, taxonomy); err != nil {
			return nil, err
		}
		return taxonomy, nil
	})
}
