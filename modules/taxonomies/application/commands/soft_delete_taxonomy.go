package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// SoftDeleteTaxonomyCommand marks a taxonomy deleted without removing it.
type SoftDeleteTaxonomyCommand struct {
	TaxonomyID types.TaxonomyID
}

type SoftDeleteTaxonomyHandler struct {
	repo      domain.TaxonomyRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewSoftDeleteTaxonomyHandler(repo domain.TaxonomyRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *SoftDeleteTaxonomyHandler {
	return &SoftDeleteTaxonomyHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *SoftDeleteTaxonomyHandler) Handle(ctx context.Context, cmd SoftDeleteTaxonomyCommand) (*domain.Taxonomy, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Taxonomy, error) {
		taxonomy, err := load(ctx, h.repo, cmd.TaxonomyID)
		if err != nil {
			return nil, err
		}

		taxonomy.SoftDelete()

		if err := saveAndPublish(ctx, h.repo, h.publisher, taxonomy); err != nil {
			return nil, err
		}
		return taxonomy, nil
	})
}

// RestoreTaxonomyCommand clears a soft delete.
type RestoreTaxonomyCommand struct {
	TaxonomyID types.TaxonomyID
}

type RestoreTaxonomyHandler struct {
	repo      domain.TaxonomyRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewRestoreTaxonomyHandler(repo domain.TaxonomyRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *RestoreTaxonomyHandler {
	return &RestoreTaxonomyHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *RestoreTaxonomyHandler) Handle(ctx context.Context, cmd RestoreTaxonomyCommand) (*domain.Taxonomy, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Taxonomy, error) {
		taxonomy, err := load(ctx, h.repo, cmd.TaxonomyID)
		if err != nil {
			return nil, err
		}

		taxonomy.Restore()

		if err := saveAndPublish(ctx, h.repo, h.publisher, taxonomy); err != nil {
			return nil, err
		}
		return taxonomy, nil
	})
}
