// Package businesses provides the business listings of the directory.
package businesses

import (
	"log/slog"
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	"github.com/rai/clean-directory-go/internal/platform/transaction"
	"github.com/rai/clean-directory-go/modules/businesses/application/commands"
	"github.com/rai/clean-directory-go/modules/businesses/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/businesses/application/queries"
	"github.com/rai/clean-directory-go/modules/businesses/domain"
	httphandler "github.com/rai/clean-directory-go/modules/businesses/infrastructure/http"
	"github.com/rai/clean-directory-go/modules/businesses/infrastructure/persistence"
	"github.com/rai/clean-directory-go/modules/shared/events"
)

// Module is the public API for the businesses bounded context.
type Module interface {
	RegisterRoutes(mux *http.ServeMux)
}

type Config struct {
	// Repository defaults to a fresh in-memory repository.
	Repository domain.BusinessRepository
	Logger     *slog.Logger
	// AuditLog receives every published event. Nil disables auditing.
	AuditLog *audit.Writer
	Handlers []events.Handler[domain.Event]
}

type module struct {
	http *httphandler.Handler
}

func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "businesses")

	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	registry := eventbus.NewRegistry[domain.Event](logger)
	registry.Subscribe("activity_logger", eventhandlers.NewActivityLogger(logger))
	if cfg.AuditLog != nil {
		registry.Subscribe("audit_log", audit.NewHandler[domain.Event]("businesses", cfg.AuditLog))
	}
	for _, h := range cfg.Handlers {
		registry.Subscribe("custom", h)
	}
	bus := registry.Build()
	txScope := transaction.NewExclusiveScope("businesses")

	return &module{
		http: httphandler.NewHandler(
			commands.NewCreateBusinessHandler(repository, txScope, bus),
			commands.NewUpdateBusinessHandler(repository, txScope, bus),
			commands.NewSoftDeleteBusinessHandler(repository, txScope, bus),
			commands.NewRestoreBusinessHandler(repository, txScope, bus),
			commands.NewDeleteBusinessHandler(repository, txScope, bus),
			queries.NewGetBusinessHandler(repository),
			queries.NewListBusinessesHandler(repository, txScope),
		),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	m.http.RegisterRoutes(mux)
}
