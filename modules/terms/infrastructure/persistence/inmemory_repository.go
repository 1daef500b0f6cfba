// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"time"

	"github.com/rai/clean-directory-go/internal/platform/memstore"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// InMemoryRepository implements TermRepository using in-memory storage.
type InMemoryRepository struct {
	store *memstore.Store[*domain.Term]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		store: memstore.New(memstore.Schema[*domain.Term]{
			Key:       func(t *domain.Term) string { return t.ID().String() },
			CreatedAt: func(t *domain.Term) time.Time { return t.Timestamps().CreatedAt() },
			Clone:     (*domain.Term).Clone,
		}),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, term *domain.Term) error {
	r.store.Save(term)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.TermID) (*domain.Term, error) {
	term, ok := r.store.Get(id.String())
	if !ok {
		return nil, nil
	}
	return term, nil
}

func (r *InMemoryRepository) Query(ctx context.Context, spec specification.Specification[*domain.Term], limit, offset int) ([]*domain.Term, error) {
	return r.store.Query(spec, limit, offset), nil
}

func (r *InMemoryRepository) Count(ctx context.Context, spec specification.Specification[*domain.Term]) (int, error) {
	return r.store.Count(spec), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id types.TermID) error {
	r.store.Delete(id.String())
	return nil
}

// Compile-time interface check.
var _ domain.TermRepository = (*InMemoryRepository)(nil)
