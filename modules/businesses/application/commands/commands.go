// Package commands contains write use cases for the businesses module.
package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

func load(ctx context.Context, repo domain.BusinessRepository, id types.BusinessID) (*domain.Business, error) {
	business, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding business: %w", err)
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}
	return business, nil
}

// saveAndPublish persists the business and publishes its pending events.
// A publish failure is reported as a conflict; the save is not undone.
func saveAndPublish(ctx context.Context, repo domain.BusinessRepository, publisher events.Publisher[domain.Event], business *domain.Business) error {
	if err := repo.Save(ctx, business); err != nil {
		return fmt.Errorf("saving business: %w", err)
	}
	return publish(ctx, publisher, business.TakeEvents()...)
}

func publish(ctx context.Context, publisher events.Publisher[domain.Event], evts ...domain.Event) error {
	if err := publisher.Publish(ctx, evts...); err != nil {
		return types.Conflict("publishing business events", err)
	}
	return nil
}
