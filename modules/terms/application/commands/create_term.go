package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// CreateTermCommand represents the intent to create a term.
type CreateTermCommand struct {
	TaxonomyID  types.TaxonomyID
	ParentID    *types.TermID
	Name        domain.TermName
	Visible     bool
	Description *domain.TermDescription
}

// CreateTermHandler handles the CreateTermCommand.
type CreateTermHandler struct {
	repo      domain.TermRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewCreateTermHandler(repo domain.TermRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *CreateTermHandler {
	return &CreateTermHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the create term use case.
func (h *CreateTermHandler) Handle(ctx context.Context, cmd CreateTermCommand) (*domain.Term, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Term, error) {
		term := domain.NewTerm(cmd.TaxonomyID, cmd.ParentID, cmd.Name, cmd.Visible, cmd.Description)
		if err := saveAndPublish(ctx, h.repo, h.publisher, term); err != nil {
			return nil, err
		}
		return term, nil
	})
}
