package queries_test

import (
	"context"
	"slices"
	"testing"

	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/queries"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
	"github.com/rai/clean-directory-go/modules/taxonomies/infrastructure/persistence"
)

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T, repo domain.TaxonomyRepository, names ...string) []*domain.Taxonomy {
	t.Helper()
	var out []*domain.Taxonomy
	for _, n := range names {
		name, err := domain.NewTaxonomyName(n)
		if err != nil {
			t.Fatalf("failed to create name: %v", err)
		}
		tax := domain.NewTaxonomy(nil, name, true, nil)
		if err := repo.Save(context.Background(), tax); err != nil {
			t.Fatalf("save: %v", err)
		}
		out = append(out, tax)
	}
	return out
}

func TestGetTaxonomyHandler_Absent(t *testing.T) {
	handler := queries.NewGetTaxonomyHandler(persistence.NewInMemoryRepository())

	got, err := handler.Handle(context.Background(), queries.GetTaxonomyQuery{TaxonomyID: types.NewTaxonomyID()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestGetTaxonomyHandler_RendersState(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	tax := seed(t, repo, "Country")[0]

	got, err := queries.NewGetTaxonomyHandler(repo).Handle(context.Background(), queries.GetTaxonomyQuery{TaxonomyID: tax.ID()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Country" || got.Version != 1 || got.Status != "Active" || got.UpdatedAt != nil {
		t.Errorf("unexpected dto: %+v", got)
	}
}

func TestListTaxonomiesHandler_Filters(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	seeded := seed(t, repo, "Country", "County", "Industry")

	hidden := seeded[2]
	hidden.SetVisible(false)
	_ = repo.Save(context.Background(), hidden)

	tests := []struct {
		name   string
		filter queries.Filter
		want   []string
	}{
		{"empty filter matches all", queries.Filter{}, []string{"Country", "County", "Industry"}},
		{"starts with", queries.Filter{Name: &specification.StringFilter{StartsWith: ptr("Coun")}}, []string{"Country", "County"}},
		{"equals", queries.Filter{Name: &specification.StringFilter{Equals: ptr("County")}}, []string{"County"}},
		{"visible", queries.Filter{Visible: &specification.ValueFilter[bool]{Equals: ptr(false)}}, []string{"Industry"}},
		{
			"or",
			queries.Filter{Or: []queries.Filter{
				{Name: &specification.StringFilter{Equals: ptr("Country")}},
				{Name: &specification.StringFilter{Contains: ptr("dust")}},
			}},
			[]string{"Country", "Industry"},
		},
		{
			"not",
			queries.Filter{Not: &queries.Filter{Name: &specification.StringFilter{Contains: ptr("try")}}},
			[]string{"County"},
		},
		{
			"and",
			queries.Filter{And: []queries.Filter{
				{Name: &specification.StringFilter{StartsWith: ptr("C")}},
				{Name: &specification.StringFilter{Contains: ptr("ntr")}},
			}},
			[]string{"Country"},
		},
		{"by id", queries.Filter{ID: &specification.ValueFilter[string]{Equals: ptr(seeded[1].ID().String())}}, []string{"County"}},
	}

	handler := queries.NewListTaxonomiesHandler(repo, transaction.NewExclusiveScope("taxonomies"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handler.Handle(context.Background(), queries.ListTaxonomiesQuery{Filter: tt.filter, Limit: 10})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Taxonomies) != len(tt.want) || res.Total != len(tt.want) {
				t.Fatalf("got %d taxonomies (total %d), want %d", len(res.Taxonomies), res.Total, len(tt.want))
			}
			// Seeded names are alphabetical, but equal creation times fall back
			// to id order, so compare as sorted sets.
			var got []string
			for _, dto := range res.Taxonomies {
				got = append(got, dto.Name)
			}
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListTaxonomiesHandler_ZeroLimit(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	seed(t, repo, "Country")

	res, err := queries.NewListTaxonomiesHandler(repo, transaction.NewExclusiveScope("taxonomies")).Handle(context.Background(), queries.ListTaxonomiesQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Taxonomies) != 0 || res.Total != 1 {
		t.Errorf("expected empty page with total 1, got %d items, total %d", len(res.Taxonomies), res.Total)
	}
}
