package businesses_test

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/modules/businesses"
	"github.com/rai/clean-directory-go/modules/businesses/application/queries"
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

func (b *syncBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func newServer(t *testing.T, cfg businesses.Config) *httptest.Server {
	t.Helper()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	businesses.New(cfg).RegisterRoutes(mux)
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

const bakery = `{
	"name": "Rosie's Bakery",
	"description": "Sourdough since 1998",
	"contact": {
		"email": "Hello@Rosies.de",
		"phone": "+49 30 1234567",
		"address": {"line": "Torstr. 1", "city": "Berlin", "postal_code": "10119", "country": "DE"}
	},
	"social_media": {"instagram": "https://instagram.com/rosies"},
	"features": {
		"hours": [{"day": "Mon", "hours": "7am-6pm"}],
		"services": ["Catering"],
		"tags": ["food", "bread"],
		"extra": {"parking": "street"}
	}
}`

func TestModule_Lifecycle(t *testing.T) {
	auditLog := &syncBuffer{}
	srv := newServer(t, businesses.Config{AuditLog: audit.NewWriter(auditLog)})

	status, body := do(t, http.MethodPost, srv.URL+"/businesses", bakery)
	if status != http.StatusCreated {
		t.Fatalf("create: status %d: %s", status, body)
	}
	var created queries.BusinessDTO
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Version != 1 || created.Contact.Email != "hello@rosies.de" || created.SocialMedia["instagram"] == "" {
		t.Errorf("unexpected created business %+v", created)
	}
	if created.Features == nil || len(created.Features.Tags) != 2 || created.Features.Extra["parking"] != "street" {
		t.Errorf("unexpected features %+v", created.Features)
	}
	item := srv.URL + "/businesses/" + created.ID

	status, body = do(t, http.MethodPatch, item, `{"contact":{"website":"https://rosies.de"},"social_media":{}}`)
	if status != http.StatusOK {
		t.Fatalf("update: status %d: %s", status, body)
	}
	var updated queries.BusinessDTO
	_ = json.Unmarshal(body, &updated)
	if updated.Version != 3 || updated.Contact.Email != "" || updated.Contact.Website != "https://rosies.de" {
		t.Errorf("unexpected updated business %+v", updated)
	}
	if len(updated.SocialMedia) != 0 {
		t.Errorf("expected social media to be cleared, got %v", updated.SocialMedia)
	}

	status, body = do(t, http.MethodGet, srv.URL+"/businesses?tag=bread&name_starts_with=Rosie", "")
	var page queries.ListBusinessesResult
	if err := json.Unmarshal(body, &page); err != nil || status != http.StatusOK || page.Total != 1 {
		t.Errorf("unexpected list response %d: %s", status, body)
	}

	if status, _ = do(t, http.MethodDelete, item, ""); status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
	if status, _ = do(t, http.MethodGet, item, ""); status != http.StatusNotFound {
		t.Errorf("expected 404 after hard delete, got %d", status)
	}

	lines := auditLog.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 audit lines, got %d", len(lines))
	}
	var rec audit.Record
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("decode audit line: %v", err)
	}
	if rec.Module != "businesses" || rec.EventType != "business.contact_updated" || rec.Version != 2 {
		t.Errorf("unexpected audit record %+v", rec)
	}
}

func TestModule_RejectsInvalidInput(t *testing.T) {
	srv := newServer(t, businesses.Config{})

	tests := []struct {
		name, body string
	}{
		{"blank name", `{"name":" "}`},
		{"empty contact", `{"name":"Acme","contact":{}}`},
		{"bad phone", `{"name":"Acme","contact":{"phone":"call me"}}`},
		{"incomplete address", `{"name":"Acme","contact":{"address":{"line":"1 Main St"}}}`},
		{"bad website", `{"name":"Acme","contact":{"website":"acme.io"}}`},
		{"bad platform", `{"name":"Acme","social_media":{"my space":"https://myspace.com/acme"}}`},
		{"bad tag", `{"name":"Acme","features":{"tags":["Not A Tag!"]}}`},
		{"blank hours", `{"name":"Acme","features":{"hours":[{"day":"Mon","hours":""}]}}`},
		{"blank extra", `{"name":"Acme","features":{"extra":{"wifi":" "}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, body := do(t, http.MethodPost, srv.URL+"/businesses", tt.body); status != http.StatusBadRequest {
				t.Errorf("status %d, want 400: %s", status, body)
			}
		})
	}

	if status, _ := do(t, http.MethodPost, srv.URL+"/businesses/search", `{"limit":-1}`); status != http.StatusBadRequest {
		t.Errorf("negative search limit: status %d, want 400", status)
	}
}
