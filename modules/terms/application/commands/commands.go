// Package commands contains write use cases for the terms module.
// Every use case runs inside the module's transaction scope: load or build
// the aggregate, mutate it, save it, then publish the drained events.
package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// load returns the term or ErrTermNotFound.
func load(ctx context.Context, repo domain.TermRepository, id types.TermID) (*domain.Term, error) {
	term, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding term: %w", err)
	}
	if term == nil {
		return nil, domain.ErrTermNotFound
	}
	return term, nil
}

// saveAndPublish persists the term and publishes its pending events.
// A publish failure is reported as a conflict; the save is not undone.
func saveAndPublish(ctx context.Context, repo domain.TermRepository, publisher events.Publisher[domain.Event], term *domain.Term) error {
	if err := repo.Save(ctx, term); err != nil {
		return fmt.Errorf("saving term: %w", err)
	}
	return publish(ctx, publisher, term.TakeEvents()...)
}

func publish(ctx context.Context, publisher events.Publisher[domain.Event], evts ...domain.Event) error {
	if err := publisher.Publish(ctx, evts...); err != nil {
		return types.Conflict("publishing term events", err)
	}
	return nil
}
