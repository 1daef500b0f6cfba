// Package transaction defines the use-case boundary seen by modules.
package transaction

import "context"

// Scope runs a use case with exclusive access to the module's repository
// and event bus. Every read-modify-write-publish sequence runs inside a
// single Execute call, so mutations to one repository are totally ordered.
//
// Implementations (e.g. the in-process exclusive scope) decide how access is
// serialized; there is no rollback, a failed fn leaves whatever it already
// committed in place.
type Scope interface {
	// Execute runs fn while holding the scope. The scope is released when fn
	// returns, whether it succeeded or not.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteWithResult runs fn within the scope and returns the result.
// This is a generic helper that wraps Scope.Execute for cases
// where the use case needs to return a value.
func ExecuteWithResult[T any](ctx context.Context, scope Scope, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := scope.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}
