package queries

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// Filter selects taxonomies. Every set criterion must hold; And, Or and Not
// nest further filters.
type Filter struct {
	ID          *specification.ValueFilter[string] `json:"id,omitempty"`
	ParentID    *specification.ValueFilter[string] `json:"parent_id,omitempty"`
	Name        *specification.StringFilter        `json:"name,omitempty"`
	Description *specification.StringFilter        `json:"description,omitempty"`
	Visible     *specification.ValueFilter[bool]   `json:"visible,omitempty"`
	Deleted     *specification.ValueFilter[bool]   `json:"deleted,omitempty"`

	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`
	Not *Filter  `json:"not,omitempty"`
}

// Specification compiles the filter. An empty filter matches everything.
func (f Filter) Specification() specification.Specification[*domain.Taxonomy] {
	specs := []specification.Specification[*domain.Taxonomy]{
		specification.Value(f.ID, func(t *domain.Taxonomy) string { return t.ID().String() }),
		specification.Value(f.ParentID, func(t *domain.Taxonomy) string {
			if p, ok := t.ParentID(); ok {
				return p.String()
			}
			return ""
		}),
		specification.String(f.Name, func(t *domain.Taxonomy) string { return t.Name().String() }),
		specification.String(f.Description, func(t *domain.Taxonomy) string {
			d, _ := t.Description()
			return d.String()
		}),
		specification.Value(f.Visible, (*domain.Taxonomy).Visible),
		specification.Value(f.Deleted, (*domain.Taxonomy).IsDeleted),
	}

	for _, sub := range f.And {
		specs = append(specs, sub.Specification())
	}
	if len(f.Or) > 0 {
		alternatives := make([]specification.Specification[*domain.Taxonomy], len(f.Or))
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

// ListTaxonomiesQuery lists taxonomies matching Filter, oldest first.
type ListTaxonomiesQuery struct {
	Filter Filter
	Offset int
	Limit  int
}

type ListTaxonomiesResult struct {
	Taxonomies []*TaxonomyDTO `json:"taxonomies"`
	Total      int            `json:"total"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
}

type ListTaxonomiesHandler struct {
	repo  domain.TaxonomyRepository
	scope transaction.Scope
}

func NewListTaxonomiesHandler(repo domain.TaxonomyRepository, scope transaction.Scope) *ListTaxonomiesHandler {
	return &ListTaxonomiesHandler{repo: repo, scope: scope}
}

func (h *ListTaxonomiesHandler) Handle(ctx context.Context, query ListTaxonomiesQuery) (*ListTaxonomiesResult, error) {
	if query.Filter.depth() > specification.MaxDepth {
		return nil, specification.ErrTooDeep
	}
	spec := query.Filter.Specification()

	// The page and the total are read under the scope so they agree.
	var (
		taxonomies []*domain.Taxonomy
		total      int
	)
	err := h.scope.Execute(ctx, func(ctx context.Context) error {
		var err error
		if taxonomies, err = h.repo.Query(ctx, spec, query.Limit, query.Offset); err != nil {
			return fmt.Errorf("querying taxonomies: %w", err)
		}
		if total, err = h.repo.Count(ctx, spec); err != nil {
			return fmt.Errorf("counting taxonomies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]*TaxonomyDTO, len(taxonomies))
	for i, t := range taxonomies {
		dtos[i] = ToTaxonomyDTO(t)
	}

	return &ListTaxonomiesResult{
		Taxonomies: dtos,
		Total:      total,
		Offset:     query.Offset,
		Limit:      query.Limit,
	}, nil
}
