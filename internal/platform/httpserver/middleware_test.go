package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecovery(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Recovery(discardLogger()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestMiddleware_Order(t *testing.T) {
	var order []string
	mark := func(name string) MiddlewareFunc {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestTracing_ContinuesIncomingTrace(t *testing.T) {
	prevProvider, prevPropagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	tests := []struct {
		name        string
		traceparent string
		wantSame    bool
	}{
		{"with traceparent", "00-" + traceID + "-00f067aa0ba902b7-01", true},
		{"without traceparent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got trace.SpanContext
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = trace.SpanContextFromContext(r.Context())
			}), Tracing())

			req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
			if tt.traceparent != "" {
				req.Header.Set("traceparent", tt.traceparent)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if !got.IsValid() {
				t.Fatal("handler saw no span")
			}
			if same := got.TraceID().String() == traceID; same != tt.wantSame {
				t.Errorf("trace id %s, continued incoming trace = %v, want %v", got.TraceID(), same, tt.wantSame)
			}
		})
	}
}

func TestHandleError_MapsKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", types.Validation("bad"), http.StatusBadRequest},
		{"not found", types.NotFound("missing"), http.StatusNotFound},
		{"conflict", types.Conflict("publish", io.EOF), http.StatusConflict},
		{"forbidden", types.Forbidden("no"), http.StatusForbidden},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"", DefaultPageLimit, 0, false},
		{"?limit=5&offset=10", 5, 10, false},
		{"?limit=1000", MaxPageLimit, 0, false},
		{"?limit=0", 0, 0, false},
		{"?limit=-1", 0, 0, true},
		{"?offset=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			limit, offset, err := Page(httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (limit != tt.wantLimit || offset != tt.wantOffset) {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestQueryStringFilter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/items?name_starts_with=Ac&other=1", nil)

	f := QueryStringFilter(r, "name")
	if f == nil || f.StartsWith == nil || *f.StartsWith != "Ac" || f.Equals != nil || f.Contains != nil {
		t.Errorf("unexpected filter %+v", f)
	}
	if QueryStringFilter(r, "description") != nil {
		t.Error("expected nil filter for absent field")
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"name":"Acme"}`, false},
		{"unknown field", `{"name":"Acme","extra":1}`, true},
		{"malformed", `{"name":`, true},
		{"oversized", `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got body
			err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload)), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}
