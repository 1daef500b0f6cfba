package queries_test

import (
	"context"
	"slices"
	"testing"

	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/application/queries"
	"github.com/rai/clean-directory-go/modules/users/domain"
	"github.com/rai/clean-directory-go/modules/users/infrastructure/persistence"
)

func ptr[T any](v T) *T { return &v }

type seedUser struct {
	first, last, email string
	country            types.TermID
	demographics       map[types.TaxonomyID][]string
}

func seed(t *testing.T, repo domain.UserRepository, users ...seedUser) []*domain.User {
	t.Helper()
	var out []*domain.User
	for _, s := range users {
		first, err := domain.NewFirstName(s.first)
		if err != nil {
			t.Fatalf("first name: %v", err)
		}
		last, err := domain.NewLastName(s.last)
		if err != nil {
			t.Fatalf("last name: %v", err)
		}
		email, err := types.NewEmailAddress(s.email)
		if err != nil {
			t.Fatalf("email: %v", err)
		}
		var demographics *domain.Demographics
		if s.demographics != nil {
			d, err := domain.NewDemographics(s.demographics)
			if err != nil {
				t.Fatalf("demographics: %v", err)
			}
			demographics = &d
		}
		user := domain.NewUser(first, last, email, s.country, demographics)
		if err := repo.Save(context.Background(), user); err != nil {
			t.Fatalf("save: %v", err)
		}
		out = append(out, user)
	}
	return out
}

func TestGetUserHandler(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	handler := queries.NewGetUserHandler(repo)

	got, err := handler.Handle(context.Background(), queries.GetUserQuery{UserID: types.NewUserID()})
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for an absent user, got (%+v, %v)", got, err)
	}

	user := seed(t, repo, seedUser{first: "Ada", last: "Lovelace", email: "ada@example.com", country: types.NewTermID()})[0]
	got, err = handler.Handle(context.Background(), queries.GetUserQuery{UserID: user.ID()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Ada Lovelace" || got.Updated != "Never" || got.Status != "Active" || got.Demographics != nil {
		t.Errorf("unexpected dto: %+v", got)
	}
}

func TestListUsersHandler_Filters(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	uk, fr := types.NewTermID(), types.NewTermID()
	occupation := types.NewTaxonomyID()

	seeded := seed(t, repo,
		seedUser{first: "Ada", last: "Lovelace", email: "ada@example.com", country: uk,
			demographics: map[types.TaxonomyID][]string{occupation: {"Mathematician"}}},
		seedUser{first: "Alan", last: "Turing", email: "alan@example.org", country: uk,
			demographics: map[types.TaxonomyID][]string{occupation: {"Mathematician", "Engineer"}}},
		seedUser{first: "Marie", last: "Curie", email: "marie@example.org", country: fr},
	)
	curie := seeded[2]
	curie.SoftDelete()
	_ = repo.Save(context.Background(), curie)

	tests := []struct {
		name   string
		filter queries.Filter
		want   []string
	}{
		{"all", queries.Filter{}, []string{"Ada", "Alan", "Marie"}},
		{"first name prefix", queries.Filter{FirstName: &specification.StringFilter{StartsWith: ptr("A")}}, []string{"Ada", "Alan"}},
		{"email domain", queries.Filter{Email: &specification.StringFilter{Contains: ptr("example.org")}}, []string{"Alan", "Marie"}},
		{"country", queries.Filter{CountryTermID: &specification.ValueFilter[string]{Equals: ptr(fr.String())}}, []string{"Marie"}},
		{"deleted", queries.Filter{Deleted: &specification.ValueFilter[bool]{Equals: ptr(false)}}, []string{"Ada", "Alan"}},
		{"demographic", queries.Filter{Demographic: &queries.DemographicFilter{TaxonomyID: occupation.String(), Value: "Engineer"}}, []string{"Alan"}},
		{"bad demographic taxonomy", queries.Filter{Demographic: &queries.DemographicFilter{TaxonomyID: "nope", Value: "Engineer"}}, nil},
		{
			"not",
			queries.Filter{Not: &queries.Filter{LastName: &specification.StringFilter{Equals: ptr("Turing")}}},
			[]string{"Ada", "Marie"},
		},
		{
			"or",
			queries.Filter{Or: []queries.Filter{
				{FirstName: &specification.StringFilter{Equals: ptr("Marie")}},
				{LastName: &specification.StringFilter{StartsWith: ptr("Love")}},
			}},
			[]string{"Ada", "Marie"},
		},
	}

	handler := queries.NewListUsersHandler(repo, transaction.NewExclusiveScope("users"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handler.Handle(context.Background(), queries.ListUsersQuery{Filter: tt.filter, Limit: 10})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got []string
			for _, u := range res.Users {
				got = append(got, u.FirstName)
			}
			slices.Sort(got)
			if !slices.Equal(got, tt.want) || res.TotalCount != len(tt.want) {
				t.Errorf("got %v (total %d), want %v", got, res.TotalCount, tt.want)
			}
		})
	}
}

func TestListUsersHandler_Pagination(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	seed(t, repo,
		seedUser{first: "Ada", last: "Lovelace", email: "ada@example.com"},
		seedUser{first: "Alan", last: "Turing", email: "alan@example.com"},
		seedUser{first: "Grace", last: "Hopper", email: "grace@example.com"},
	)

	handler := queries.NewListUsersHandler(repo, transaction.NewExclusiveScope("users"))
	first, _ := handler.Handle(context.Background(), queries.ListUsersQuery{Limit: 2})
	second, _ := handler.Handle(context.Background(), queries.ListUsersQuery{Limit: 2, Offset: 2})

	if len(first.Users) != 2 || len(second.Users) != 1 {
		t.Fatalf("expected a 2-then-1 split, got %d and %d", len(first.Users), len(second.Users))
	}
	if first.TotalCount != 3 || second.TotalCount != 3 {
		t.Errorf("expected total 3 on both pages, got %d and %d", first.TotalCount, second.TotalCount)
	}
}
