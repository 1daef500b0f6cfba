// Package specification implements composable predicates used by
// repositories to filter aggregates without a query language.
package specification

// Specification is a pure predicate over candidates of type T.
// Implementations must be safe for concurrent use.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts an ordinary function to a Specification.
type Func[T any] func(candidate T) bool

func (f Func[T]) IsSatisfiedBy(candidate T) bool { return f(candidate) }

type allowAll[T any] struct{}

func (allowAll[T]) IsSatisfiedBy(T) bool { return true }

// AllowAll matches every candidate. It is what an empty filter compiles to.
func AllowAll[T any]() Specification[T] { return allowAll[T]{} }

// IsAllowAll reports whether s is the AllowAll identity.
func IsAllowAll[T any](s Specification[T]) bool {
	_, ok := s.(allowAll[T])
	return ok
}

// AndSpec is satisfied when both sides are. Right is not evaluated when
// Left fails.
type AndSpec[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (s AndSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.Left.IsSatisfiedBy(candidate) && s.Right.IsSatisfiedBy(candidate)
}

// OrSpec is satisfied when either side is. Right is not evaluated when
// Left holds.
type OrSpec[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (s OrSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.Left.IsSatisfiedBy(candidate) || s.Right.IsSatisfiedBy(candidate)
}

// NotSpec negates a specification.
type NotSpec[T any] struct {
	Spec Specification[T]
}

func (s NotSpec[T]) IsSatisfiedBy(candidate T) bool {
	return !s.Spec.IsSatisfiedBy(candidate)
}

func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpec[T]{Left: left, Right: right}
}

func Or[T any](left, right Specification[T]) Specification[T] {
	return OrSpec[T]{Left: left, Right: right}
}

func Not[T any](s Specification[T]) Specification[T] {
	return NotSpec[T]{Spec: s}
}

// All folds specs left to right with And. AllowAll and nil entries are
// dropped; with nothing left the result is AllowAll.
func All[T any](specs ...Specification[T]) Specification[T] {
	var out Specification[T]
	for _, s := range specs {
		if s == nil || IsAllowAll(s) {
			continue
		}
		if out == nil {
			out = s
			continue
		}
		out = And(out, s)
	}
	if out == nil {
		return AllowAll[T]()
	}
	return out
}

// Any folds specs left to right with Or. An empty list carries no criteria
// and yields AllowAll.
func Any[T any](specs ...Specification[T]) Specification[T] {
	var out Specification[T]
	for _, s := range specs {
		if s == nil {
			continue
		}
		if IsAllowAll(s) {
			return s
		}
		if out == nil {
			out = s
			continue
		}
		out = Or(out, s)
	}
	if out == nil {
		return AllowAll[T]()
	}
	return out
}

// Composite wraps a specification with fluent combinators:
//
//	spec := specification.Of(nameStartsWithA).And(visible).Not()
type Composite[T any] struct {
	Specification[T]
}

func Of[T any](s Specification[T]) Composite[T] { return Composite[T]{Specification: s} }

func (c Composite[T]) And(other Specification[T]) Composite[T] {
	return Of(And(c.Specification, other))
}

func (c Composite[T]) Or(other Specification[T]) Composite[T] {
	return Of(Or(c.Specification, other))
}

func (c Composite[T]) Not() Composite[T] {
	return Of(Not(c.Specification))
}
