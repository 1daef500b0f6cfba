// Package commands contains write use cases for the taxonomies module.
// Every use case runs inside the module's transaction scope: load or build
// the aggregate, mutate it, save it, then publish the drained events.
package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// load returns the taxonomy or ErrTaxonomyNotFound.
func load(ctx context.Context, repo domain.TaxonomyRepository, id types.TaxonomyID) (*domain.Taxonomy, error) {
	taxonomy, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding taxonomy: %w", err)
	}
	if taxonomy == nil {
		return nil, domain.ErrTaxonomyNotFound
	}
	return taxonomy, nil
}

// saveAndPublish persists the taxonomy and publishes its pending events.
// A publish failure is reported as a conflict; the save is not undone.
func saveAndPublish(ctx context.Context, repo domain.TaxonomyRepository, publisher events.Publisher[domain.Event], taxonomy *domain.Taxonomy) error {
	if err := repo.Save(ctx, taxonomy); err != nil {
		return fmt.Errorf("saving taxonomy: %w", err)
	}
	return publish(ctx, publisher, taxonomy.TakeEvents()...)
}

func publish(ctx context.Context, publisher events.Publisher[domain.Event], evts ...domain.Event) error {
	if err := publisher.Publish(ctx, evts...); err != nil {
		return types.Conflict("publishing taxonomy events", err)
	}
	return nil
}
