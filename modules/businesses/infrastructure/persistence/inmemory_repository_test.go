package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/businesses/infrastructure/persistence"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

type fixture struct {
	name     string
	city     string
	tag      string
	platform string
}

func newBusiness(t *testing.T, f fixture) *domain.Business {
	t.Helper()
	name, err := domain.NewBusinessName(f.name)
	if err != nil {
		t.Fatalf("name: %v", err)
	}

	var contact *domain.ContactInfo
	if f.city != "" {
		addr, err := types.NewPhysicalAddress("1 Main St", f.city, "", "DE")
		if err != nil {
			t.Fatalf("address: %v", err)
		}
		c, err := domain.NewContactInfo(nil, nil, &addr, nil)
		if err != nil {
			t.Fatalf("contact: %v", err)
		}
		contact = &c
	}

	var social *domain.SocialMedia
	if f.platform != "" {
		s, err := domain.NewSocialMedia(map[string]string{f.platform: "https://example.com/" + f.platform})
		if err != nil {
			t.Fatalf("social media: %v", err)
		}
		social = &s
	}

	var features *domain.BusinessFeatures
	if f.tag != "" {
		tag, err := types.NewTag(f.tag)
		if err != nil {
			t.Fatalf("tag: %v", err)
		}
		ft, err := domain.NewBusinessFeatures(nil, nil, []types.Tag{tag}, nil)
		if err != nil {
			t.Fatalf("features: %v", err)
		}
		features = &ft
	}

	return domain.NewBusiness(name, nil, contact, social, features)
}

func TestInMemoryRepository_DomainSpecifications(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()

	for _, f := range []fixture{
		{name: "Bakery", city: "Berlin", tag: "food", platform: "instagram"},
		{name: "Garage", city: "Munich", tag: "cars"},
		{name: "Cafe", city: "Berlin", tag: "food", platform: "facebook"},
		{name: "Studio"},
	} {
		if err := repo.Save(ctx, newBusiness(t, f)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	tests := []struct {
		name string
		spec specification.Specification[*domain.Business]
		want int
	}{
		{"all", specification.AllowAll[*domain.Business](), 4},
		{"tag food", domain.HasTag("food"), 2},
		{"tag missing", domain.HasTag("books"), 0},
		{"on instagram", domain.OnPlatform("instagram"), 1},
		{"in Berlin", domain.InCity("Berlin"), 2},
		{"Berlin and facebook", specification.And(domain.InCity("Berlin"), domain.OnPlatform("facebook")), 1},
		{"not in Berlin", specification.Not(domain.InCity("Berlin")), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Count(ctx, tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	b := newBusiness(t, fixture{name: "Bakery"})
	_ = repo.Save(ctx, b)

	got, _ := repo.FindByID(ctx, b.ID())
	renamed, _ := domain.NewBusinessName("Patisserie")
	got.SetName(renamed)

	again, _ := repo.FindByID(ctx, b.ID())
	if again.Name().String() != "Bakery" {
		t.Errorf("mutating a loaded business changed the store: %s", again.Name())
	}
}

func TestInMemoryRepository_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := persistence.NewInMemoryRepository()

	if err := repo.Save(ctx, newBusiness(t, fixture{name: "Bakery"})); !errors.Is(err, context.Canceled) {
		t.Errorf("Save: expected context.Canceled, got %v", err)
	}
	if _, err := repo.Query(ctx, specification.AllowAll[*domain.Business](), 10, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Query: expected context.Canceled, got %v", err)
	}
}

func TestInMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	b := newBusiness(t, fixture{name: "Bakery"})
	_ = repo.Save(ctx, b)

	if err := repo.Delete(ctx, b.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := repo.FindByID(ctx, b.ID()); got != nil {
		t.Error("business still present after delete")
	}
	if err := repo.Delete(ctx, b.ID()); err != nil {
		t.Errorf("deleting an absent business: %v", err)
	}
}
