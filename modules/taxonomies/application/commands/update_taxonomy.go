package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// UpdateTaxonomyCommand changes the fields that are set; nil fields are left
// untouched. Each set field is recorded as its own event.
type UpdateTaxonomyCommand struct {
	TaxonomyID  types.TaxonomyID
	ParentID    *types.TaxonomyID
	Name        *domain.TaxonomyName
	Visible     *bool
	Description *domain.TaxonomyDescription
}

// UpdateTaxonomyHandler handles the UpdateTaxonomyCommand.
type UpdateTaxonomyHandler struct {
	repo      domain.TaxonomyRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewUpdateTaxonomyHandler(repo domain.TaxonomyRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *UpdateTaxonomyHandler {
	return &UpdateTaxonomyHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the update taxonomy use case.
func (h *UpdateTaxonomyHandler) Handle(ctx context.Context, cmd UpdateTaxonomyCommand) (*domain.Taxonomy, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Taxonomy, error) {
		taxonomy, err := load(ctx, h.repo, cmd.TaxonomyID)
		if err != nil {
			return nil, err
		}

		if cmd.ParentID != nil {
			taxonomy.SetParentID(*cmd.ParentID)
		}
		if cmd.Name != nil {
			taxonomy.SetName(*cmd.Name)
		}
		if cmd.Visible != nil {
			taxonomy.SetVisible(*cmd.Visible)
		}
		if cmd.Description != nil {
			taxonomy.SetDescription(*cmd.Description)
		}

		if err := saveAndPublish(ctx, h.repo, h.publisher, taxonomy); err != nil {
			return nil, err
		}
		return taxonomy, nil
	})
}
