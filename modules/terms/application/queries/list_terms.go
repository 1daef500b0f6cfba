package queries

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// Filter selects terms. Every set criterion must hold; And, Or and Not
// nest further filters.
type Filter struct {
	ID          *specification.ValueFilter[string] `json:"id,omitempty"`
	TaxonomyID  *specification.ValueFilter[string] `json:"taxonomy_id,omitempty"`
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
func (f Filter) Specification() specification.Specification[*domain.Term] {
	specs := []specification.Specification[*domain.Term]{
		specification.Value(f.ID, func(t *domain.Term) string { return t.ID().String() }),
		specification.Value(f.TaxonomyID, func(t *domain.Term) string { return t.TaxonomyID().String() }),
		specification.Value(f.ParentID, func(t *domain.Term) string {
			if p, ok := t.ParentID(); ok {
				return p.String()
			}
			return ""
		}),
		specification.String(f.Name, func(t *domain.Term) string { return t.Name().String() }),
		specification.String(f.Description, func(t *domain.Term) string {
			d, _ := t.Description()
			return d.String()
		}),
		specification.Value(f.Visible, (*domain.Term).Visible),
		specification.Value(f.Deleted, (*domain.Term).IsDeleted),
	}

	for _, sub := range f.And {
		specs = append(specs, sub.Specification())
	}
	if len(f.Or) > 0 {
		alternatives := make([]specification.Specification[*domain.Term], len(f.Or))
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

// ListTermsQuery lists terms matching Filter, oldest first.
type ListTermsQuery struct {
	Filter Filter
	Offset int
	Limit  int
}

type ListTermsResult struct {
	Terms  []*TermDTO `json:"terms"`
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

type ListTermsHandler struct {
	repo  domain.TermRepository
	scope transaction.Scope
}

func NewListTermsHandler(repo domain.TermRepository, scope transaction.Scope) *ListTermsHandler {
	return &ListTermsHandler{repo: repo, scope: scope}
}

func (h *ListTermsHandler) Handle(ctx context.Context, query ListTermsQuery) (*ListTermsResult, error) {
	if query.Filter.depth() > specification.MaxDepth {
		return nil, specification.ErrTooDeep
	}
	spec := query.Filter.Specification()

	// The page and the total are read under the scope so they agree.
	var (
		terms []*domain.Term
		total int
	)
	err := h.scope.Execute(ctx, func(ctx context.Context) error {
		var err error
		if terms, err = h.repo.Query(ctx, spec, query.Limit, query.Offset); err != nil {
			return fmt.Errorf("querying terms: %w", err)
		}
		if total, err = h.repo.Count(ctx, spec); err != nil {
			return fmt.Errorf("counting terms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]*TermDTO, len(terms))
	for i, t := range terms {
		dtos[i] = ToTermDTO(t)
	}

	return &ListTermsResult{
		Terms:  dtos,
		Total:  total,
		Offset: query.Offset,
		Limit:  query.Limit,
	}, nil
}
