// Package transaction provides the in-process implementation of the
// use-case scope modules run their commands in.
package transaction

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"

	sharedtx "github.com/rai/clean-directory-go/modules/shared/transaction"
)

var tracer = otel.Tracer("github.com/rai/clean-directory-go/internal/platform/transaction")

// ExclusiveScope serializes use cases on one module. Only one fn runs at a
// time; other callers block until the scope is released or their context is
// cancelled.
//
// A nested Execute on the same scope from inside fn runs inline instead of
// deadlocking.
type ExclusiveScope struct {
	name string
	sem  *semaphore.Weighted
}

// NewExclusiveScope creates a scope. name labels traces.
func NewExclusiveScope(name string) *ExclusiveScope {
	return &ExclusiveScope{name: name, sem: semaphore.NewWeighted(1)}
}

// Execute implements transaction.Scope.
func (s *ExclusiveScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if held(ctx, s) {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction.Execute")
	defer span.End()
	span.SetAttributes(attribute.String("scope", s.name))

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire %s scope: %w", s.name, err)
	}
	defer s.sem.Release(1)

	return fn(withHeld(ctx, s))
}

// Compile-time interface check.
var _ sharedtx.Scope = (*ExclusiveScope)(nil)
