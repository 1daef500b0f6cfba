// Package users provides user management functionality.
// This file defines the module's public API - the single interface
// that other modules use to interact with the users bounded context.
package users

import (
	"log/slog"
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/users/application/commands"
	"github.com/rai/clean-directory-go/modules/users/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/users/application/queries"
	"github.com/rai/clean-directory-go/modules/users/domain"
	httphandler "github.com/rai/clean-directory-go/modules/users/infrastructure/http"
	"github.com/rai/clean-directory-go/modules/users/infrastructure/persistence"
)

// Module is the public API for the users bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: Domain Events (Config.Handlers)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	Repository domain.UserRepository
	Logger     *slog.Logger
	AuditLog   *audit.Writer
	// Handlers receive user events after the activity and audit logs, e.g.
	// the notifications module's welcome email.
	Handlers []events.Handler[domain.Event]
}

// module implements the Module interface.
type module struct {
	http *httphandler.Handler
}

// New creates a new users module with all dependencies wired.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "users")

	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	// Wire up the event bus
	registry := eventbus.NewRegistry[domain.Event](logger)
	registry.Subscribe("activity_logger", eventhandlers.NewActivityLogger(logger))
	if cfg.AuditLog != nil {
		registry.Subscribe("audit_log", audit.NewHandler[domain.Event]("users", cfg.AuditLog))
	}
	for _, h := range cfg.Handlers {
		registry.Subscribe("external", h)
	}
	bus := registry.Build()
	txScope := transaction.NewExclusiveScope("users")

	// Wire up command and query handlers
	return &module{
		http: httphandler.NewHandler(
			commands.NewCreateUserHandler(repository, txScope, bus),
			commands.NewUpdateUserHandler(repository, txScope, bus),
			commands.NewSoftDeleteUserHandler(repository, txScope, bus),
			commands.NewRestoreUserHandler(repository, txScope, bus),
			commands.NewDeleteUserHandler(repository, txScope, bus),
			queries.NewGetUserHandler(repository),
			queries.NewListUsersHandler(repository, txScope),
		),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	m.http.RegisterRoutes(mux)
}
