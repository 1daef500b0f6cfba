// Package audit writes domain events to an append-only JSON lines log.
package audit

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/rai/clean-directory-go/modules/shared/events"
)

// Record is one line of the audit log.
type Record struct {
	Module      string           `json:"module"`
	EventID     string           `json:"event_id"`
	EventType   events.EventType `json:"event_type"`
	AggregateID string           `json:"aggregate_id"`
	Version     uint64           `json:"aggregate_version"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Payload     any              `json:"payload"`
}

// Handler appends every event it receives to w. It is safe for concurrent
// use; writes from several modules sharing one writer do not interleave.
type Handler[E events.Event] struct {
	module string
	w      *Writer
}

// Writer serializes writes to the underlying io.Writer.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) write(rec Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding audit record: %w", err)
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("writing audit record: %w", err)
	}
	return nil
}

func NewHandler[E events.Event](module string, w *Writer) *Handler[E] {
	return &Handler[E]{module: module, w: w}
}

// Handle implements events.Handler.
func (h *Handler[E]) Handle(ctx context.Context, event E) error {
	return h.w.write(Record{
		Module:      h.module,
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Version:     event.AggregateVersion(),
		OccurredAt:  event.OccurredAt(),
		Payload:     event,
	})
}
