// Package persistence implements repository interfaces using specific storage backends.
package persistence

import (
	"context"
	"time"

	"github.com/rai/clean-directory-go/internal/platform/memstore"
	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// InMemoryRepository implements BusinessRepository using in-memory storage.
type InMemoryRepository struct {
	store *memstore.Store[*domain.Business]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		store: memstore.New(memstore.Schema[*domain.Business]{
			Key:       func(b *domain.Business) string { return b.ID().String() },
			CreatedAt: func(b *domain.Business) time.Time { return b.Timestamps().CreatedAt() },
			Clone:     (*domain.Business).Clone,
		}),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, business *domain.Business) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Save(business)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.BusinessID) (*domain.Business, error) {
	business, ok := r.store.Get(id.String())
	if !ok {
		return nil, nil
	}
	return business, nil
}

func (r *InMemoryRepository) Query(ctx context.Context, spec specification.Specification[*domain.Business], limit, offset int) ([]*domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Query(spec, limit, offset), nil
}

func (r *InMemoryRepository) Count(ctx context.Context, spec specification.Specification[*domain.Business]) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.Count(spec), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id types.BusinessID) error {
	r.store.Delete(id.String())
	return nil
}

var _ domain.BusinessRepository = (*InMemoryRepository)(nil)
