package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// UpdateTermCommand changes the fields that are set; nil fields are left
// untouched. Each set field is recorded as its own event.
type UpdateTermCommand struct {
	TermID      types.TermID
	TaxonomyID  *types.TaxonomyID
	ParentID    *types.TermID
	Name        *domain.TermName
	Visible     *bool
	Description *domain.TermDescription
}

// UpdateTermHandler handles the UpdateTermCommand.
type UpdateTermHandler struct {
	repo      domain.TermRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewUpdateTermHandler(repo domain.TermRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *UpdateTermHandler {
	return &UpdateTermHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the update term use case.
func (h *UpdateTermHandler) Handle(ctx context.Context, cmd UpdateTermCommand) (*domain.Term, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Term, error) {
		term, err := load(ctx, h.repo, cmd.TermID)
		if err != nil {
			return nil, err
		}

		if cmd.TaxonomyID != nil {
			term.SetTaxonomyID(*cmd.TaxonomyID)
		}
		if cmd.ParentID != nil {
			term.SetParentID(*cmd.ParentID)
		}
		if cmd.Name != nil {
			term.SetName(*cmd.Name)
		}
		if cmd.Visible != nil {
			term.SetVisible(*cmd.Visible)
		}
		if cmd.Description != nil {
			term.SetDescription(*cmd.Description)
		}

		if err := saveAndPublish(ctx, h.repo, h.publisher, term); err != nil {
			return nil, err
		}
		return term, nil
	})
}
