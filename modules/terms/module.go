// Package terms provides term management functionality.
// This file defines the module's public API.
package terms

import (
	"log/slog"
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/terms/application/commands"
	"github.com/rai/clean-directory-go/modules/terms/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/terms/application/queries"
	"github.com/rai/clean-directory-go/modules/terms/domain"
	httphandler "github.com/rai/clean-directory-go/modules/terms/infrastructure/http"
	"github.com/rai/clean-directory-go/modules/terms/infrastructure/persistence"
)

// Module is the public API for the terms bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	// Repository defaults to a fresh in-memory repository.
	Repository domain.TermRepository
	Logger     *slog.Logger
	// AuditLog receives every published event. Nil disables auditing.
	AuditLog *audit.Writer
	// Handlers run after the built-in ones, in order.
	Handlers []events.Handler[domain.Event]
}

type module struct {
	http *httphandler.Handler
}

// New creates a new terms module with all dependencies wired.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "terms")

	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	registry := eventbus.NewRegistry[domain.Event](logger)
	registry.Subscribe("activity_logger", eventhandlers.NewActivityLogger(logger))
	if cfg.AuditLog != nil {
		registry.Subscribe("audit_log", audit.NewHandler[domain.Event]("terms", cfg.AuditLog))
	}
	for _, h := range cfg.Handlers {
		registry.Subscribe("custom", h)
	}
	bus := registry.Build()
	txScope := transaction.NewExclusiveScope("terms")

	return &module{
		http: httphandler.NewHandler(
			commands.NewCreateTermHandler(repository, txScope, bus),
			commands.NewUpdateTermHandler(repository, txScope, bus),
			commands.NewSoftDeleteTermHandler(repository, txScope, bus),
			commands.NewRestoreTermHandler(repository, txScope, bus),
			commands.NewDeleteTermHandler(repository, txScope, bus),
			queries.NewGetTermHandler(repository),
			queries.NewListTermsHandler(repository, txScope),
		),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	m.http.RegisterRoutes(mux)
}
