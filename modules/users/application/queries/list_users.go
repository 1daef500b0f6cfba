package queries

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// DemographicFilter matches users that reported Value under TaxonomyID.
type DemographicFilter struct {
	TaxonomyID string `json:"taxonomy_id"`
	Value      string `json:"value"`
}

// Filter selects users. Every set criterion must hold.
type Filter struct {
	ID            *specification.ValueFilter[string] `json:"id,omitempty"`
	FirstName     *specification.StringFilter        `json:"first_name,omitempty"`
	LastName      *specification.StringFilter        `json:"last_name,omitempty"`
	Email         *specification.StringFilter        `json:"email,omitempty"`
	CountryTermID *specification.ValueFilter[string] `json:"country_term_id,omitempty"`
	Demographic   *DemographicFilter                 `json:"demographic,omitempty"`
	Deleted       *specification.ValueFilter[bool]   `json:"deleted,omitempty"`

	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`
	Not *Filter  `json:"not,omitempty"`
}

// Specification compiles the filter. A demographic filter naming an
// unparseable taxonomy matches nothing.
func (f Filter) Specification() specification.Specification[*domain.User] {
	specs := []specification.Specification[*domain.User]{
		specification.Value(f.ID, func(u *domain.User) string { return u.ID().String() }),
		specification.String(f.FirstName, func(u *domain.User) string { return u.FirstName().String() }),
		specification.String(f.LastName, func(u *domain.User) string { return u.LastName().String() }),
		specification.String(f.Email, func(u *domain.User) string { return u.Email().String() }),
		specification.Value(f.CountryTermID, func(u *domain.User) string { return u.CountryTermID().String() }),
		specification.Value(f.Deleted, (*domain.User).IsDeleted),
	}
	if f.Demographic != nil {
		specs = append(specs, f.Demographic.specification())
	}
	for _, sub := range f.And {
		specs = append(specs, sub.Specification())
	}
	if len(f.Or) > 0 {
		alternatives := make([]specification.Specification[*domain.User], 0, len(f.Or))
		for _, sub := range f.Or {
			alternatives = append(alternatives, sub.Specification())
		}
		specs = append(specs, specification.Any(alternatives...))
	}
	if f.Not != nil {
		specs = append(specs, specification.Not(f.Not.Specification()))
	}
	return specification.All(specs...)
}

func (f DemographicFilter) specification() specification.Specification[*domain.User] {
	taxonomyID, err := types.ParseTaxonomyID(f.TaxonomyID)
	if err != nil {
		return specification.Not(specification.AllowAll[*domain.User]())
	}
	return specification.Func[*domain.User](func(u *domain.User) bool {
		d, ok := u.Demographics()
		return ok && d.Has(taxonomyID, f.Value)
	})
}

// depth returns how deeply f nests And, Or and Not filters.
func (f Filter) depth() int {
	d := 0
	for _, sub := range f.And {
		d = max(d, sub.depth())
	}
	for _, sub := range f.Or {
		d = max(d, sub.depth())
	}
	if f.Not != nil {
		d = max(d, f.Not.depth())
	}
	return d + 1
}

// ListUsersQuery represents a request to list users with pagination.
type ListUsersQuery struct {
	Filter Filter
	Offset int
	Limit  int
}

// UserListDTO contains a paginated list of users.
type UserListDTO struct {
	Users      []*UserDTO `json:"users"`
	TotalCount int        `json:"total_count"`
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
}

// ListUsersHandler handles ListUsersQuery.
type ListUsersHandler struct {
	repo  domain.UserRepository
	scope transaction.Scope
}

func NewListUsersHandler(repo domain.UserRepository, scope transaction.Scope) *ListUsersHandler {
	return &ListUsersHandler{repo: repo, scope: scope}
}

// Handle executes the list users query. Limits are applied by the caller.
func (h *ListUsersHandler) Handle(ctx context.Context, query ListUsersQuery) (*UserListDTO, error) {
	if query.Filter.depth() > specification.MaxDepth {
		return nil, specification.ErrTooDeep
	}
	spec := query.Filter.Specification()

	// The page and the total are read under the scope so they agree.
	var (
		users []*domain.User
		total int
	)
	err := h.scope.Execute(ctx, func(ctx context.Context) error {
		var err error
		if users, err = h.repo.Query(ctx, spec, query.Limit, query.Offset); err != nil {
			return fmt.Errorf("querying users: %w", err)
		}
		if total, err = h.repo.Count(ctx, spec); err != nil {
			return fmt.Errorf("counting users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]*UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}

	return &UserListDTO{
		Users:      dtos,
		TotalCount: total,
		Offset:     query.Offset,
		Limit:      query.Limit,
	}, nil
}
