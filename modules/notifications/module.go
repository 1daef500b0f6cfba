package notifications

import (
	"log/slog"

	"github.com/rai/clean-directory-go/modules/notifications/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/shared/events"
	usersdomain "github.com/rai/clean-directory-go/modules/users/domain"
)

// Module represents the notification module entry point.
// It owns no aggregates; it only reacts to other modules' events.
type Module struct {
	welcome *eventhandlers.WelcomeEmailHandler
}

type Config struct {
	Logger *slog.Logger
	// Mailer delivers outgoing mail. Defaults to logging each message.
	Mailer eventhandlers.Mailer
	// DedupWindow is how many recent welcome emails are remembered to
	// suppress redelivered events. Defaults to eventhandlers.DefaultDedupWindow.
	DedupWindow int
}

// New initializes the notification module.
func New(cfg Config) *Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notifications")

	mailer := cfg.Mailer
	if mailer == nil {
		mailer = eventhandlers.LogMailer{Logger: logger}
	}

	return &Module{welcome: eventhandlers.NewWelcomeEmailHandler(logger, mailer, cfg.DedupWindow)}
}

// UserHandlers returns the handlers to subscribe on the users event bus.
func (m *Module) UserHandlers() []events.Handler[usersdomain.Event] {
	return []events.Handler[usersdomain.Event]{m.welcome}
}
