// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"time"

	"github.com/rai/clean-directory-go/internal/platform/memstore"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// InMemoryRepository implements TaxonomyRepository using in-memory storage.
type InMemoryRepository struct {
	store *memstore.Store[*domain.Taxonomy]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		store: memstore.New(memstore.Schema[*domain.Taxonomy]{
			Key:       func(t *domain.Taxonomy) string { return t.ID().String() },
			CreatedAt: func(t *domain.Taxonomy) time.Time { return t.Timestamps().CreatedAt() },
			Clone:     (*domain.Taxonomy).Clone,
		}),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, taxonomy *domain.Taxonomy) error {
	r.store.Save(taxonomy)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
	taxonomy, ok := r.store.Get(id.String())
	if !ok {
		return nil, nil
	}
	return taxonomy, nil
}

func (r *InMemoryRepository) Query(ctx context.Context, spec specification.Specification[*domain.Taxonomy], limit, offset int) ([]*domain.Taxonomy, error) {
	return r.store.Query(spec, limit, offset), nil
}

func (r *InMemoryRepository) Count(ctx context.Context, spec specification.Specification[*domain.Taxonomy]) (int, error) {
	return r.store.Count(spec), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id types.TaxonomyID) error {
	r.store.Delete(id.String())
	return nil
}

// Compile-time interface check.
var _ domain.TaxonomyRepository = (*InMemoryRepository)(nil)
