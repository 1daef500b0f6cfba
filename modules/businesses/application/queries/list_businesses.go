package queries

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
)

// Filter selects businesses. Every set criterion must hold; And, Or and Not
// nest further filters.
type Filter struct {
	ID          *specification.ValueFilter[string] `json:"id,omitempty"`
	Name        *specification.StringFilter        `json:"name,omitempty"`
	Description *specification.StringFilter        `json:"description,omitempty"`
	Email       *specification.StringFilter        `json:"email,omitempty"`
	City        *specification.ValueFilter[string] `json:"city,omitempty"`
	Tag         *specification.ValueFilter[string] `json:"tag,omitempty"`
	Platform    *specification.ValueFilter[string] `json:"platform,omitempty"`
	Deleted     *specification.ValueFilter[bool]   `json:"deleted,omitempty"`

	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`
	Not *Filter  `json:"not,omitempty"`
}

// Specification compiles the filter. An empty filter matches everything.
func (f Filter) Specification() specification.Specification[*domain.Business] {
	specs := []specification.Specification[*domain.Business]{
		specification.Value(f.ID, func(b *domain.Business) string { return b.ID().String() }),
		specification.String(f.Name, func(b *domain.Business) string { return b.Name().String() }),
		specification.String(f.Description, func(b *domain.Business) string {
			d, _ := b.Description()
			return d.String()
		}),
		specification.String(f.Email, contactEmail),
		specification.Value(f.Deleted, (*domain.Business).IsDeleted),
	}
	if !f.City.IsEmpty() {
		specs = append(specs, domain.InCity(*f.City.Equals))
	}
	if !f.Tag.IsEmpty() {
		specs = append(specs, domain.HasTag(*f.Tag.Equals))
	}
	if !f.Platform.IsEmpty() {
		specs = append(specs, domain.OnPlatform(*f.Platform.Equals))
	}

	for _, sub := range f.And {
		specs = append(specs, sub.Specification())
	}
	if len(f.Or) > 0 {
		alternatives := make([]specification.Specification[*domain.Business], len(f.Or))
		for i, sub := range f.Or {
			alternatives[i] = sub.Specification()
		}
		specs = append(specs, specification.Any(alternatives...))
	}
	if f.Not != nil {
		specs = append(specs, specification.Not(f.Not.Specification()))
	}

	return specification.All(specs...)
}

func contactEmail(b *domain.Business) string {
	c, ok := b.Contact()
	if !ok {
		return ""
	}
	e, _ := c.Email()
	return e.String()
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

// ListBusinessesQuery lists businesses matching Filter, oldest first.
type ListBusinessesQuery struct {
	Filter Filter
	Offset int
	Limit  int
}

type ListBusinessesResult struct {
	Businesses []*BusinessDTO `json:"businesses"`
	Total      int            `json:"total"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
}

type ListBusinessesHandler struct {
	repo  domain.BusinessRepository
	scope transaction.Scope
}

func NewListBusinessesHandler(repo domain.BusinessRepository, scope transaction.Scope) *ListBusinessesHandler {
	return &ListBusinessesHandler{repo: repo, scope: scope}
}

func (h *ListBusinessesHandler) Handle(ctx context.Context, query ListBusinessesQuery) (*ListBusinessesResult, error) {
	if query.Filter.depth() > specification.MaxDepth {
		return nil, specification.ErrTooDeep
	}
	spec := query.Filter.Specification()

	// The page and the total are read under the scope so they agree.
	var (
		businesses []*domain.Business
		total      int
	)
	err := h.scope.Execute(ctx, func(ctx context.Context) error {
		var err error
		if businesses, err = h.repo.Query(ctx, spec, query.Limit, query.Offset); err != nil {
			return fmt.Errorf("querying businesses: %w", err)
		}
		if total, err = h.repo.Count(ctx, spec); err != nil {
			return fmt.Errorf("counting businesses: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]*BusinessDTO, len(businesses))
	for i, b := range businesses {
		dtos[i] = ToBusinessDTO(b)
	}

	return &ListBusinessesResult{
		Businesses: dtos,
		Total:      total,
		Offset:     query.Offset,
		Limit:      query.Limit,
	}, nil
}
