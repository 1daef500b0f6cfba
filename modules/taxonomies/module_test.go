package taxonomies_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/eventbus"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/taxonomies"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/queries"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newServer(t *testing.T, cfg taxonomies.Config) *httptest.Server {
	t.Helper()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	taxonomies.New(cfg).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte) queries.TaxonomyDTO {
	t.Helper()
	var dto queries.TaxonomyDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return dto
}

func TestModule_Lifecycle(t *testing.T) {
	auditLog := &syncBuffer{}
	srv := newServer(t, taxonomies.Config{AuditLog: audit.NewWriter(auditLog)})

	status, body := do(t, http.MethodPost, srv.URL+"/taxonomies", `{"name":"Acme"}`)
	if status != http.StatusCreated {
		t.Fatalf("create: status %d: %s", status, body)
	}
	created := decode(t, body)
	if created.Version != 1 || !created.Visible {
		t.Errorf("unexpected created taxonomy %+v", created)
	}
	item := srv.URL + "/taxonomies/" + created.ID

	status, body = do(t, http.MethodPatch, item, `{"name":"Acme2"}`)
	if status != http.StatusOK {
		t.Fatalf("update: status %d: %s", status, body)
	}
	if updated := decode(t, body); updated.Version != 2 || updated.Name != "Acme2" {
		t.Errorf("unexpected updated taxonomy %+v", updated)
	}

	if status, _ = do(t, http.MethodPost, item+"/soft-delete", ""); status != http.StatusOK {
		t.Fatalf("soft delete: status %d", status)
	}
	status, body = do(t, http.MethodGet, item, "")
	if status != http.StatusOK || !decode(t, body).Deleted {
		t.Errorf("expected soft-deleted taxonomy to be readable, got %d: %s", status, body)
	}

	status, body = do(t, http.MethodGet, srv.URL+"/taxonomies?deleted=true", "")
	var page queries.ListTaxonomiesResult
	if err := json.Unmarshal(body, &page); err != nil || status != http.StatusOK || page.Total != 1 {
		t.Errorf("unexpected list response %d: %s", status, body)
	}

	if status, _ = do(t, http.MethodDelete, item, ""); status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
	if status, _ = do(t, http.MethodGet, item, ""); status != http.StatusNotFound {
		t.Errorf("expected 404 after hard delete, got %d", status)
	}
	if status, _ = do(t, http.MethodDelete, item, ""); status != http.StatusNotFound {
		t.Errorf("expected 404 deleting an absent taxonomy, got %d", status)
	}

	if lines := strings.Count(auditLog.String(), "\n"); lines != 4 {
		t.Errorf("expected 4 audit lines, got %d", lines)
	}
}

func TestModule_RejectsInvalidInput(t *testing.T) {
	srv := newServer(t, taxonomies.Config{})

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"blank name", http.MethodPost, "/taxonomies", `{"name":"  "}`, http.StatusBadRequest},
		{"bad parent", http.MethodPost, "/taxonomies", `{"name":"A","parent_id":"nope"}`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/taxonomies", `{"title":"A"}`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/taxonomies/not-a-uuid", "", http.StatusBadRequest},
		{"bad limit", http.MethodGet, "/taxonomies?limit=-2", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, body := do(t, tt.method, srv.URL+tt.path, tt.body); status != tt.want {
				t.Errorf("status %d, want %d: %s", status, tt.want, body)
			}
		})
	}
}

func TestModule_PublishFailureIsConflict(t *testing.T) {
	var secondCalls atomic.Int32
	srv := newServer(t, taxonomies.Config{
		Handlers: []events.Handler[domain.Event]{
			eventbus.HandlerFunc[domain.Event](func(context.Context, domain.Event) error {
				return errors.New("downstream unavailable")
			}),
			eventbus.HandlerFunc[domain.Event](func(context.Context, domain.Event) error {
				secondCalls.Add(1)
				return nil
			}),
		},
	})

	if status, body := do(t, http.MethodPost, srv.URL+"/taxonomies", `{"name":"Acme"}`); status != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", status, body)
	}
	if n := secondCalls.Load(); n != 0 {
		t.Errorf("second handler called %d times, want 0", n)
	}

	_, body := do(t, http.MethodGet, srv.URL+"/taxonomies", "")
	var page queries.ListTaxonomiesResult
	if err := json.Unmarshal(body, &page); err != nil || page.Total != 1 {
		t.Errorf("expected the saved taxonomy to be listed, got %s", body)
	}
}
