package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
	"github.com/rai/clean-directory-go/modules/users/infrastructure/persistence"
)

func newUser(t *testing.T, email string) *domain.User {
	t.Helper()
	first, _ := domain.NewFirstName("Ada")
	last, _ := domain.NewLastName("Lovelace")
	addr, err := types.NewEmailAddress(email)
	if err != nil {
		t.Fatalf("failed to create email: %v", err)
	}
	return domain.NewUser(first, last, addr, types.NewTermID(), nil)
}

func TestInMemoryRepository_EmailSpecifications(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()

	ada := newUser(t, "ada@example.com")
	grace := newUser(t, "grace@example.com")
	for _, u := range []*domain.User{ada, grace} {
		if err := repo.Save(ctx, u); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	tests := []struct {
		name string
		spec specification.Specification[*domain.User]
		want int
	}{
		{"email is", domain.EmailIs(ada.Email()), 1},
		{"email taken by another user", domain.EmailTakenBy(ada.Email(), grace.ID()), 1},
		{"own email is not taken", domain.EmailTakenBy(ada.Email(), ada.ID()), 0},
		{"all", specification.AllowAll[*domain.User](), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := repo.Count(ctx, tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.want {
				t.Errorf("Count() = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	user := newUser(t, "ada@example.com")
	_ = repo.Save(ctx, user)

	got, _ := repo.FindByID(ctx, user.ID())
	first, _ := domain.NewFirstName("Grace")
	got.SetFirstName(first)

	again, _ := repo.FindByID(ctx, user.ID())
	if again.FirstName().String() != "Ada" || again.Version() != 1 {
		t.Errorf("unsaved change leaked into the store: %s v%d", again.FirstName(), again.Version())
	}
}

func TestInMemoryRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := persistence.NewInMemoryRepository().Query(ctx, specification.AllowAll[*domain.User](), 10, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestInMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	user := newUser(t, "ada@example.com")
	_ = repo.Save(ctx, user)

	if err := repo.Delete(ctx, user.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, err := repo.FindByID(ctx, user.ID()); got != nil || err != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", got, err)
	}
}
