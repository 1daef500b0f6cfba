package types

import (
	"errors"
	"fmt"
)

// Error kinds shared by every bounded context.
// Match them with errors.Is; module errors wrap exactly one kind.
var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	// ErrForbidden is reserved for authorization checks at the API boundary.
	ErrForbidden = errors.New("forbidden")
)

// ErrInvalidID is returned when an identifier is not a valid UUID.
var ErrInvalidID = Validation("invalid identifier format")

// Error is a domain error of a given kind with an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func Validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: ErrNotFound, Message: msg} }
func Forbidden(msg string) error  { return &Error{Kind: ErrForbidden, Message: msg} }

// Conflict wraps a downstream failure, typically a failed event publish.
func Conflict(msg string, cause error) error {
	return &Error{Kind: ErrConflict, Message: msg, Err: cause}
}

// KindOf returns the kind of err, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
