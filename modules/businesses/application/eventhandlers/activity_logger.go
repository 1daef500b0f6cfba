// Package eventhandlers contains the side-effecting consumers of business
// events.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
)

// ActivityLogger logs a line describing every business event. Contact
// details are reduced to which channels are present.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

func (h *ActivityLogger) Handle(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("business_id", event.AggregateID()),
		slog.Uint64("version", event.AggregateVersion()),
	}

	var msg string
	switch e := event.(type) {
	case domain.BusinessCreated:
		msg = "business created"
		attrs = append(attrs, slog.String("name", e.Name), slog.Int("social_profiles", len(e.SocialMedia)))
	case domain.BusinessDetailsUpdated:
		msg = "business details updated"
		if e.Name != nil {
			attrs = append(attrs, slog.String("previous_name", e.Name.Previous), slog.String("name", e.Name.Current))
		}
	case domain.BusinessContactUpdated:
		msg = "business contact updated"
		attrs = append(attrs, slog.Any("channels", channels(e.Contact.Current)))
	case domain.BusinessSocialMediaUpdated:
		msg = "business social media updated"
		attrs = append(attrs, slog.Int("social_profiles", len(e.SocialMedia.Current)))
	case domain.BusinessFeaturesUpdated:
		msg = "business features updated"
		if e.Features.Current != nil {
			attrs = append(attrs, slog.Any("tags", e.Features.Current.Tags))
		}
	case domain.BusinessSoftDeleted:
		msg = "business soft deleted"
	case domain.BusinessRestored:
		msg = "business restored"
	case domain.BusinessDeleted:
		msg = "business deleted"
	default:
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	return nil
}

func channels(c *domain.ContactSnapshot) []string {
	if c == nil {
		return nil
	}
	var out []string
	if c.Email != "" {
		out = append(out, "email")
	}
	if c.Phone != "" {
		out = append(out, "phone")
	}
	if c.Address != nil {
		out = append(out, "address")
	}
	if c.Website != "" {
		out = append(out, "website")
	}
	return out
}
