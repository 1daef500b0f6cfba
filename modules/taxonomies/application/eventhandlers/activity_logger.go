// Package eventhandlers contains the side-effecting consumers of taxonomy
// events. Handlers never modify taxonomies.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// ActivityLogger logs a line describing every taxonomy event.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

func (h *ActivityLogger) Handle(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("taxonomy_id", event.AggregateID()),
		slog.Uint64("version", event.AggregateVersion()),
	}

	var msg string
	switch e := event.(type) {
	case domain.TaxonomyCreated:
		msg = "taxonomy created"
		attrs = append(attrs, slog.String("name", e.Name), slog.Bool("visible", e.Visible))
	case domain.TaxonomyUpdated:
		msg = "taxonomy updated"
		if e.Name != nil {
			attrs = append(attrs, slog.String("previous_name", e.Name.Previous), slog.String("name", e.Name.Current))
		}
		if e.Visible != nil {
			attrs = append(attrs, slog.Bool("visible", e.Visible.Current))
		}
	case domain.TaxonomySoftDeleted:
		msg = "taxonomy soft deleted"
	case domain.TaxonomyRestored:
		msg = "taxonomy restored"
	case domain.TaxonomyDeleted:
		msg = "taxonomy deleted"
	default:
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	return nil
}
