package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// DeleteTaxonomyCommand removes a taxonomy permanently.
type DeleteTaxonomyCommand struct {
	TaxonomyID types.TaxonomyID
}

// DeleteTaxonomyHandler handles the DeleteTaxonomyCommand.
type DeleteTaxonomyHandler struct {
	repo      domain.TaxonomyRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewDeleteTaxonomyHandler(repo domain.TaxonomyRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *DeleteTaxonomyHandler {
	return &DeleteTaxonomyHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the hard delete use case. TaxonomyDeleted carries the
// version the taxonomy had when it was removed.
func (h *DeleteTaxonomyHandler) Handle(ctx context.Context, cmd DeleteTaxonomyCommand) error {
	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		taxonomy, err := load(ctx, h.repo, cmd.TaxonomyID)
		if err != nil {
			return err
		}

		if err := h.repo.Delete(ctx, taxonomy.ID()); err != nil {
			return fmt.Errorf("deleting taxonomy: %w", err)
		}

		return publish(ctx, h.publisher, domain.NewTaxonomyDeleted(taxonomy.ID(), taxonomy.Version()))
	})
}
