package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	platformtx "github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/commands"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
	"github.com/rai/clean-directory-go/modules/taxonomies/infrastructure/persistence"
)

// --- Mocks ---

type mockTaxonomyRepository struct {
	findByIDFn func(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error)
	saveFn     func(ctx context.Context, taxonomy *domain.Taxonomy) error
	deleteFn   func(ctx context.Context, id types.TaxonomyID) error
}

func (m *mockTaxonomyRepository) FindByID(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockTaxonomyRepository) Save(ctx context.Context, taxonomy *domain.Taxonomy) error {
	return m.saveFn(ctx, taxonomy)
}

func (m *mockTaxonomyRepository) Delete(ctx context.Context, id types.TaxonomyID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTaxonomyRepository) Query(ctx context.Context, spec specification.Specification[*domain.Taxonomy], limit, offset int) ([]*domain.Taxonomy, error) {
	return nil, nil
}

func (m *mockTaxonomyRepository) Count(ctx context.Context, spec specification.Specification[*domain.Taxonomy]) (int, error) {
	return 0, nil
}

type mockScope struct {
	executeFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.executeFn(ctx, fn)
}

func passthroughScope() *mockScope {
	return &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

type mockPublisher struct {
	publishFn func(ctx context.Context, evts ...domain.Event) error
}

func (m *mockPublisher) Publish(ctx context.Context, evts ...domain.Event) error {
	return m.publishFn(ctx, evts...)
}

// --- Tests ---

func TestUpdateTaxonomyHandler_AppliesOnlySetFields(t *testing.T) {
	existing := createTestTaxonomy(t, "Country")
	existing.TakeEvents()

	var published []domain.Event
	repo := &mockTaxonomyRepository{
		findByIDFn: func(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, taxonomy *domain.Taxonomy) error { return nil },
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, evts ...domain.Event) error {
			published = evts
			return nil
		},
	}

	name := mustName(t, "Region")
	handler := commands.NewUpdateTaxonomyHandler(repo, passthroughScope(), publisher)

	got, err := handler.Handle(context.Background(), commands.UpdateTaxonomyCommand{
		TaxonomyID: existing.ID(),
		Name:       &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name().String() != "Region" || !got.Visible() {
		t.Errorf("unexpected taxonomy state: name=%s visible=%v", got.Name(), got.Visible())
	}
	if got.Version() != 2 {
		t.Errorf("expected version 2, got %d", got.Version())
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if _, ok := published[0].(domain.TaxonomyUpdated); !ok {
		t.Errorf("expected TaxonomyUpdated, got %T", published[0])
	}
}

func TestUpdateTaxonomyHandler_NotFound(t *testing.T) {
	repo := &mockTaxonomyRepository{
		findByIDFn: func(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
			return nil, nil
		},
		saveFn: func(ctx context.Context, taxonomy *domain.Taxonomy) error {
			t.Fatal("Save should not be called when the taxonomy is not found")
			return nil
		},
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, evts ...domain.Event) error {
			t.Fatal("Publish should not be called when the taxonomy is not found")
			return nil
		},
	}

	handler := commands.NewUpdateTaxonomyHandler(repo, passthroughScope(), publisher)
	_, err := handler.Handle(context.Background(), commands.UpdateTaxonomyCommand{TaxonomyID: types.NewTaxonomyID()})

	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSoftDeleteTaxonomyHandler_SaveError(t *testing.T) {
	existing := createTestTaxonomy(t, "Country")
	errSave := errors.New("save failed")

	repo := &mockTaxonomyRepository{
		findByIDFn: func(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, taxonomy *domain.Taxonomy) error { return errSave },
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, evts ...domain.Event) error {
			t.Fatal("Publish should not be called when save fails")
			return nil
		},
	}

	handler := commands.NewSoftDeleteTaxonomyHandler(repo, passthroughScope(), publisher)
	_, err := handler.Handle(context.Background(), commands.SoftDeleteTaxonomyCommand{TaxonomyID: existing.ID()})

	if !errors.Is(err, errSave) {
		t.Errorf("expected errSave, got %v", err)
	}
}

func TestDeleteTaxonomyHandler_PublishesDeletedAtCurrentVersion(t *testing.T) {
	existing := createTestTaxonomy(t, "Country")
	existing.SetVisible(false)
	existing.TakeEvents()

	deleted := false
	var published []domain.Event
	repo := &mockTaxonomyRepository{
		findByIDFn: func(ctx context.Context, id types.TaxonomyID) (*domain.Taxonomy, error) {
			return existing, nil
		},
		deleteFn: func(ctx context.Context, id types.TaxonomyID) error {
			deleted = id == existing.ID()
			return nil
		},
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, evts ...domain.Event) error {
			published = evts
			return nil
		},
	}

	handler := commands.NewDeleteTaxonomyHandler(repo, passthroughScope(), publisher)
	if err := handler.Handle(context.Background(), commands.DeleteTaxonomyCommand{TaxonomyID: existing.ID()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !deleted {
		t.Error("expected taxonomy to be deleted")
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	evt, ok := published[0].(domain.TaxonomyDeleted)
	if !ok {
		t.Fatalf("expected TaxonomyDeleted, got %T", published[0])
	}
	if evt.AggregateVersion() != 2 {
		t.Errorf("expected version 2, got %d", evt.AggregateVersion())
	}
}

func TestCreateTaxonomyHandler_ScopeError(t *testing.T) {
	errScope := errors.New("scope failed")
	scope := &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return errScope
		},
	}

	handler := commands.NewCreateTaxonomyHandler(nil, scope, nil)
	_, err := handler.Handle(context.Background(), commands.CreateTaxonomyCommand{Name: mustName(t, "Country")})

	if !errors.Is(err, errScope) {
		t.Errorf("expected errScope, got %v", err)
	}
}

// The use cases below run against the real repository, bus and scope.

func TestTaxonomyLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	scope := platformtx.NewExclusiveScope("taxonomies")

	var seen []domain.Event
	bus := eventbus.New[domain.Event](nil, eventbus.HandlerFunc[domain.Event](func(ctx context.Context, e domain.Event) error {
		seen = append(seen, e)
		return nil
	}))

	create := commands.NewCreateTaxonomyHandler(repo, scope, bus)
	update := commands.NewUpdateTaxonomyHandler(repo, scope, bus)
	softDelete := commands.NewSoftDeleteTaxonomyHandler(repo, scope, bus)
	hardDelete := commands.NewDeleteTaxonomyHandler(repo, scope, bus)

	created, err := create.Handle(ctx, commands.CreateTaxonomyCommand{Name: mustName(t, "Acme"), Visible: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	stored, _ := repo.FindByID(ctx, created.ID())
	if stored.Version() != 1 {
		t.Fatalf("expected stored version 1, got %d", stored.Version())
	}

	name := mustName(t, "Acme2")
	if _, err := update.Handle(ctx, commands.UpdateTaxonomyCommand{TaxonomyID: created.ID(), Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ = repo.FindByID(ctx, created.ID())
	if stored.Version() != 2 || stored.Name().String() != "Acme2" {
		t.Errorf("unexpected stored taxonomy: version=%d name=%s", stored.Version(), stored.Name())
	}

	if _, err := softDelete.Handle(ctx, commands.SoftDeleteTaxonomyCommand{TaxonomyID: created.ID()}); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	stored, _ = repo.FindByID(ctx, created.ID())
	if stored == nil || !stored.IsDeleted() {
		t.Fatal("expected soft-deleted taxonomy to remain visible by id")
	}

	if err := hardDelete.Handle(ctx, commands.DeleteTaxonomyCommand{TaxonomyID: created.ID()}); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if stored, err := repo.FindByID(ctx, created.ID()); err != nil || stored != nil {
		t.Errorf("expected (nil, nil) after hard delete, got (%v, %v)", stored, err)
	}

	if len(seen) != 4 {
		t.Fatalf("expected 4 published events, got %d", len(seen))
	}
	if _, ok := seen[3].(domain.TaxonomyDeleted); !ok || seen[3].AggregateVersion() != 3 {
		t.Errorf("unexpected final event %T at version %d", seen[3], seen[3].AggregateVersion())
	}
}

func TestCreateTaxonomy_PublishFailureKeepsSave(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInMemoryRepository()
	errHandler := errors.New("handler failed")
	secondCalls := 0

	bus := eventbus.New[domain.Event](nil,
		eventbus.HandlerFunc[domain.Event](func(context.Context, domain.Event) error { return errHandler }),
		eventbus.HandlerFunc[domain.Event](func(context.Context, domain.Event) error {
			secondCalls++
			return nil
		}),
	)

	create := commands.NewCreateTaxonomyHandler(repo, platformtx.NewExclusiveScope("taxonomies"), bus)
	created, err := create.Handle(ctx, commands.CreateTaxonomyCommand{Name: mustName(t, "Acme")})

	if !errors.Is(err, types.ErrConflict) || !errors.Is(err, errHandler) {
		t.Fatalf("expected conflict wrapping errHandler, got %v", err)
	}
	if created != nil {
		t.Error("expected no taxonomy on failure")
	}
	if secondCalls != 0 {
		t.Errorf("second handler called %d times, want 0", secondCalls)
	}

	all, _ := repo.Query(ctx, specification.AllowAll[*domain.Taxonomy](), 10, 0)
	if len(all) != 1 {
		t.Errorf("expected the save to remain visible, found %d taxonomies", len(all))
	}
}

// --- Helpers ---

func mustName(t *testing.T, s string) domain.TaxonomyName {
	t.Helper()
	name, err := domain.NewTaxonomyName(s)
	if err != nil {
		t.Fatalf("failed to create name: %v", err)
	}
	return name
}

func createTestTaxonomy(t *testing.T, name string) *domain.Taxonomy {
	t.Helper()
	return domain.NewTaxonomy(nil, mustName(t, name), true, nil)
}
