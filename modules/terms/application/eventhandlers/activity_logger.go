// Package eventhandlers contains the side-effecting consumers of term
// events. Handlers never modify terms.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// ActivityLogger logs a line describing every term event.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

func (h *ActivityLogger) Handle(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("term_id", event.AggregateID()),
		slog.Uint64("version", event.AggregateVersion()),
	}

	var msg string
	switch e := event.(type) {
	case domain.TermCreated:
		msg = "term created"
		attrs = append(attrs,
			slog.String("taxonomy_id", e.TaxonomyID),
			slog.String("name", e.Name),
			slog.Bool("visible", e.Visible),
		)
	case domain.TermUpdated:
		msg = "term updated"
		if e.TaxonomyID != nil {
			msg = "term moved"
			attrs = append(attrs, slog.String("from_taxonomy_id", e.TaxonomyID.Previous), slog.String("taxonomy_id", e.TaxonomyID.Current))
		}
		if e.Name != nil {
			attrs = append(attrs, slog.String("previous_name", e.Name.Previous), slog.String("name", e.Name.Current))
		}
		if e.Visible != nil {
			attrs = append(attrs, slog.Bool("visible", e.Visible.Current))
		}
	case domain.TermSoftDeleted:
		msg = "term soft deleted"
	case domain.TermRestored:
		msg = "term restored"
	case domain.TermDeleted:
		msg = "term deleted"
	default:
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	return nil
}
