package eventhandlers_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rai/clean-directory-go/modules/businesses/application/eventhandlers"
	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

func TestActivityLogger_ReducesContactToChannels(t *testing.T) {
	var buf bytes.Buffer
	handler := eventhandlers.NewActivityLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	event := domain.BusinessContactUpdated{
		Meta: events.NewMeta(domain.BusinessContactUpdatedType, "biz-1", 2),
		Contact: events.Change[*domain.ContactSnapshot]{
			Current: &domain.ContactSnapshot{Email: "owner@acme.io", Website: "https://acme.io"},
		},
	}
	if err := handler.Handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"business contact updated"`) || !strings.Contains(out, `"channels":["email","website"]`) {
		t.Errorf("unexpected log line: %s", out)
	}
	if strings.Contains(out, "owner@acme.io") {
		t.Errorf("contact details leaked into the log: %s", out)
	}
}

func TestActivityLogger_Messages(t *testing.T) {
	tests := []struct {
		event domain.Event
		want  string
	}{
		{domain.BusinessCreated{Meta: events.NewMeta(domain.BusinessCreatedType, "b", 1), Name: "Acme"}, "business created"},
		{domain.BusinessSoftDeleted{Meta: events.NewMeta(domain.BusinessSoftDeletedType, "b", 2)}, "business soft deleted"},
		{domain.BusinessRestored{Meta: events.NewMeta(domain.BusinessRestoredType, "b", 3)}, "business restored"},
		{domain.NewBusinessDeleted(types.NewBusinessID(), 3), "business deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			handler := eventhandlers.NewActivityLogger(slog.New(slog.NewTextHandler(&buf, nil)))
			if err := handler.Handle(context.Background(), tt.event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), `msg="`+tt.want+`"`) {
				t.Errorf("expected %q in %s", tt.want, buf.String())
			}
		})
	}
}
