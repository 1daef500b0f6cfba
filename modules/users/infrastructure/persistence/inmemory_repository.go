// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"time"

	"github.com/rai/clean-directory-go/internal/platform/memstore"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// InMemoryRepository implements UserRepository using in-memory storage.
// Useful for testing and development.
type InMemoryRepository struct {
	store *memstore.Store[*domain.User]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		store: memstore.New(memstore.Schema[*domain.User]{
			Key:       func(u *domain.User) string { return u.ID().String() },
			CreatedAt: func(u *domain.User) time.Time { return u.Timestamps().CreatedAt() },
			Clone:     (*domain.User).Clone,
		}),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, user *domain.User) error {
	r.store.Save(user)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.UserID) (*domain.User, error) {
	user, ok := r.store.Get(id.String())
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *InMemoryRepository) Query(ctx context.Context, spec specification.Specification[*domain.User], limit, offset int) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Query(spec, limit, offset), nil
}

func (r *InMemoryRepository) Count(ctx context.Context, spec specification.Specification[*domain.User]) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.Count(spec), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id types.UserID) error {
	r.store.Delete(id.String())
	return nil
}

// Compile-time interface check.
var _ domain.UserRepository = (*InMemoryRepository)(nil)
