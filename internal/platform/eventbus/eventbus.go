// Package eventbus provides the in-process event bus each module publishes
// its domain events through.
// For production, this would be replaced with Google Cloud Pub/Sub, RabbitMQ, Kafka, or a similar service by adopting the outbox pattern.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rai/clean-directory-go/modules/shared/events"
)

var tracer = otel.Tracer("github.com/rai/clean-directory-go/internal/platform/eventbus")

// Bus delivers events synchronously, in the order given, to every handler in
// registration order. The handler list is fixed at construction.
//
// Delivery is fail-fast: the first handler error stops the batch, so later
// handlers and later events are not delivered.
type Bus[E events.Event] struct {
	handlers []events.Handler[E]
	logger   *slog.Logger
}

func New[E events.Event](logger *slog.Logger, handlers ...events.Handler[E]) *Bus[E] {
	if logger == nil {
		logger = slog.Default()
	}
	hs := make([]events.Handler[E], len(handlers))
	copy(hs, handlers)
	return &Bus[E]{handlers: hs, logger: logger}
}

// Publish implements events.Publisher.
func (b *Bus[E]) Publish(ctx context.Context, evts ...E) error {
	if len(evts) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "eventbus.Publish")
	defer span.End()
	span.SetAttributes(attribute.Int("event_count", len(evts)), attribute.Int("handler_count", len(b.handlers)))

	for _, event := range evts {
		b.logger.DebugContext(ctx, "publishing event", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Int("handler_count", len(b.handlers)))

		for i, handler := range b.handlers {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.ErrorContext(ctx, "event handler failed", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Int("handler_index", i), slog.Any("error", err))
				span.RecordError(err)
				span.SetStatus(codes.Error, "event handler failed")
				return fmt.Errorf("handler failed for event %s: %w", event.EventType(), err)
			}
		}
	}

	return nil
}

// HandlerCount returns the number of registered handlers.
func (b *Bus[E]) HandlerCount() int { return len(b.handlers) }

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc[E events.Event] func(ctx context.Context, event E) error

func (f HandlerFunc[E]) Handle(ctx context.Context, event E) error {
	return f(ctx, event)
}

// Compile-time interface check.
var _ events.Publisher[events.Event] = (*Bus[events.Event])(nil)
