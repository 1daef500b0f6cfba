package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	usersdomain "github.com/rai/clean-directory-go/modules/users/domain"
)

// Message is an outgoing email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) Send(ctx context.Context, msg Message) error {
	m.Logger.InfoContext(ctx, "sending email", slog.String("subject", msg.Subject))
	return nil
}

// DefaultDedupWindow is how many recent event IDs a WelcomeEmailHandler
// remembers when no window is given.
const DefaultDedupWindow = 10_000

// WelcomeEmailHandler greets newly created users.
//
// This handler performs external side effects and runs after the user has
// been saved. Delivery is deduplicated by event ID over the last window
// events sent, so a republished UserCreated does not send a second email.
// Older IDs are forgotten first.
type WelcomeEmailHandler struct {
	logger *slog.Logger
	mailer Mailer

	mu     sync.Mutex
	window int
	sent   map[string]struct{}
	order  []string // sent IDs, oldest first
}

// NewWelcomeEmailHandler creates the handler. A window of zero or less uses
// DefaultDedupWindow.
func NewWelcomeEmailHandler(logger *slog.Logger, mailer Mailer, window int) *WelcomeEmailHandler {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &WelcomeEmailHandler{
		logger: logger,
		mailer: mailer,
		window: window,
		sent:   make(map[string]struct{}, window),
	}
}

// Handle sends the welcome email for UserCreated and ignores other events.
func (h *WelcomeEmailHandler) Handle(ctx context.Context, event usersdomain.Event) error {
	created, ok := event.(usersdomain.UserCreated)
	if !ok {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, done := h.sent[created.EventID()]; done {
		h.logger.DebugContext(ctx, "welcome email already sent", slog.String("event_id", created.EventID()))
		return nil
	}

	h.logger.InfoContext(ctx, "sending welcome email",
		slog.String("user_id", created.AggregateID()),
		slog.String("action", "welcome"),
	)
	msg := Message{
		To:      created.Email,
		Subject: "Welcome to the directory",
		Body:    fmt.Sprintf("Hello %s %s, your account is ready.", created.FirstName, created.LastName),
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}
	h.remember(created.EventID())
	return nil
}

func (h *WelcomeEmailHandler) remember(id string) {
	if len(h.order) == h.window {
		delete(h.sent, h.order[0])
		h.order = h.order[1:]
	}
	h.sent[id] = struct{}{}
	h.order = append(h.order, id)
}
