// Package taxonomies provides taxonomy management functionality.
// This file defines the module's public API.
package taxonomies

import (
	"log/slog"
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/commands"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/queries"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
	httphandler "github.com/rai/clean-directory-go/modules/taxonomies/infrastructure/http"
	"github.com/rai/clean-directory-go/modules/taxonomies/infrastructure/persistence"
)

// Module is the public API for the taxonomies bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	// Repository defaults to a fresh in-memory repository.
	Repository domain.TaxonomyRepository
	Logger     *slog.Logger
	// AuditLog receives every published event. Nil disables auditing.
	AuditLog *audit.Writer
	// Handlers run after the built-in ones, in order.
	Handlers []events.Handler[domain.Event]
}

type module struct {
	http *httphandler.Handler
}

// New creates a new taxonomies module with all dependencies wired.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "taxonomies")

	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	registry := eventbus.NewRegistry[domain.Event](logger)
	registry.Subscribe("activity_logger", eventhandlers.NewActivityLogger(logger))
	if cfg.AuditLog != nil {
		registry.Subscribe("audit_log", audit.NewHandler[domain.Event]("taxonomies", cfg.AuditLog))
	}
	for _, h := range cfg.Handlers {
		registry.Subscribe("custom", h)
	}
	bus := registry.Build()
	txScope := transaction.NewExclusiveScope("taxonomies")

	return &module{
		http: httphandler.NewHandler(
			commands.NewCreateTaxonomyHandler(repository, txScope, bus),
			commands.NewUpdateTaxonomyHandler(repository, txScope, bus),
			commands.NewSoftDeleteTaxonomyHandler(repository, txScope, bus),
			commands.NewRestoreTaxonomyHandler(repository, txScope, bus),
			commands.NewDeleteTaxonomyHandler(repository, txScope, bus),
			queries.NewGetTaxonomyHandler(repository),
			queries.NewListTaxonomiesHandler(repository, txScope),
		),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	m.http.RegisterRoutes(mux)
}
