package eventbus

import (
	"log/slog"
	"sync"

	"github.com/rai/clean-directory-go/modules/shared/events"
)

// Registry collects handlers while a module is being wired and then freezes
// them into a Bus. Subscriptions made after Build do not affect buses that
// were already built.
type Registry[E events.Event] struct {
	mu       sync.Mutex
	handlers []events.Handler[E]
	logger   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry[E events.Event](logger *slog.Logger) *Registry[E] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[E]{logger: logger}
}

// Subscribe appends handler. Handlers run in the order they were subscribed.
func (r *Registry[E]) Subscribe(name string, handler events.Handler[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, handler)
	r.logger.Debug("subscribed event handler", slog.String("handler", name), slog.Int("position", len(r.handlers)))
}

// Build returns a bus over a snapshot of the current handlers.
func (r *Registry[E]) Build() *Bus[E] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return New(r.logger, r.handlers...)
}
