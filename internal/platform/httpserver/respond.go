package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// DecodeJSON decodes the request body into v, rejecting unknown fields and
// bodies larger than MaxBodyBytes.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return types.Validation("invalid request body: " + err.Error())
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorResponse{Error: message})
}

// HandleError maps an error's kind to an HTTP status. Errors without a kind
// are logged and reported as 500 without leaking their text.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	kind := types.KindOf(err)

	var status int
	switch {
	case errors.Is(kind, types.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(kind, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(kind, types.ErrConflict):
		status = http.StatusConflict
	case errors.Is(kind, types.ErrForbidden):
		status = http.StatusForbidden
	default:
		slog.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if status == http.StatusConflict {
		slog.WarnContext(r.Context(), "request conflicted", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	WriteJSON(w, status, errorResponse{Error: err.Error(), Kind: kind.Error()})
}

// Page reads limit and offset from the query string. Limit defaults to
// DefaultPageLimit and is capped at MaxPageLimit.
func Page(r *http.Request) (limit, offset int, err error) {
	limit = DefaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return 0, 0, types.Validation("limit must be a non-negative integer")
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, types.Validation("offset must be a non-negative integer")
		}
	}
	return min(limit, MaxPageLimit), offset, nil
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, types.Validation(key + " must be a boolean")
	}
	return &b, nil
}

// QueryString returns a pointer to the query parameter, or nil when absent.
func QueryString(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}

// QueryStringFilter reads key, key_contains and key_starts_with from the
// query string. It returns nil when none is present.
func QueryStringFilter(r *http.Request, key string) *specification.StringFilter {
	f := &specification.StringFilter{
		Equals:     QueryString(r, key),
		Contains:   QueryString(r, key+"_contains"),
		StartsWith: QueryString(r, key+"_starts_with"),
	}
	if f.IsEmpty() {
		return nil
	}
	return f
}

// QueryValueFilter wraps an optional value in an equality filter.
func QueryValueFilter[V comparable](v *V) *specification.ValueFilter[V] {
	if v == nil {
		return nil
	}
	return &specification.ValueFilter[V]{Equals: v}
}
