// Package eventhandlers contains in-module consumers of user events.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/clean-directory-go/modules/users/domain"
)

// ActivityLogger writes one structured log line per user event. Email
// addresses are never logged.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

func (h *ActivityLogger) Handle(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("user_id", event.AggregateID()),
		slog.Uint64("version", event.AggregateVersion()),
	}

	var msg string
	switch e := event.(type) {
	case domain.UserCreated:
		msg = "user created"
		attrs = append(attrs, slog.String("country_term_id", e.CountryTermID))
	case domain.UserBioUpdated:
		msg = "user bio updated"
		switch {
		case e.FirstName != nil:
			attrs = append(attrs, slog.String("field", "first_name"))
		case e.LastName != nil:
			attrs = append(attrs, slog.String("field", "last_name"))
		case e.CountryTermID != nil:
			attrs = append(attrs, slog.String("field", "country_term_id"), slog.String("country_term_id", e.CountryTermID.Current))
		}
	case domain.UserEmailChanged:
		msg = "user email changed"
	case domain.UserDemographicsUpdated:
		msg = "user demographics updated"
		attrs = append(attrs, slog.Int("taxonomies", len(e.Demographics.Current)))
	case domain.UserSoftDeleted:
		msg = "user soft deleted"
	case domain.UserRestored:
		msg = "user restored"
	case domain.UserDeleted:
		msg = "user deleted"
	default:
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	return nil
}
