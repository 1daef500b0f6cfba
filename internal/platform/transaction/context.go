package transaction

import "context"

// ctxKey is the context key for marking a held scope.
type ctxKey struct{}

// withHeld marks scope as held by the current call chain.
func withHeld(ctx context.Context, scope *ExclusiveScope) context.Context {
	return context.WithValue(ctx, ctxKey{}, scope)
}

// held reports whether scope is already held by the call chain in ctx.
func held(ctx context.Context, scope *ExclusiveScope) bool {
	s, ok := ctx.Value(ctxKey{}).(*ExclusiveScope)
	return ok && s == scope
}
