package specification

import (
	"strings"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

// MaxDepth bounds how deeply caller-supplied filters may nest And, Or and Not.
const MaxDepth = 16

var ErrTooDeep = types.Validation("filter nests too deeply")

// StringFilter holds the string operations a caller may apply to one field.
// Every operation that is set must hold.
type StringFilter struct {
	Equals     *string `json:"equals,omitempty"`
	Contains   *string `json:"contains,omitempty"`
	StartsWith *string `json:"starts_with,omitempty"`
}

// IsEmpty reports whether the filter sets no operation.
func (f *StringFilter) IsEmpty() bool {
	return f == nil || (f.Equals == nil && f.Contains == nil && f.StartsWith == nil)
}

// ValueFilter matches a comparable field by equality.
type ValueFilter[V comparable] struct {
	Equals *V `json:"equals,omitempty"`
}

func (f *ValueFilter[V]) IsEmpty() bool { return f == nil || f.Equals == nil }

// Equals matches candidates whose projected field equals value.
func Equals[T any](project func(T) string, value string) Specification[T] {
	return Func[T](func(c T) bool { return project(c) == value })
}

// Contains matches candidates whose projected field contains value.
func Contains[T any](project func(T) string, value string) Specification[T] {
	return Func[T](func(c T) bool { return strings.Contains(project(c), value) })
}

// StartsWith matches candidates whose projected field starts with value.
func StartsWith[T any](project func(T) string, value string) Specification[T] {
	return Func[T](func(c T) bool { return strings.HasPrefix(project(c), value) })
}

// EqualTo matches candidates whose projected comparable field equals value.
func EqualTo[T any, V comparable](project func(T) V, value V) Specification[T] {
	return Func[T](func(c T) bool { return project(c) == value })
}

// String compiles a StringFilter against one projected field.
// A nil or empty filter yields AllowAll.
func String[T any](f *StringFilter, project func(T) string) Specification[T] {
	if f.IsEmpty() {
		return AllowAll[T]()
	}
	var specs []Specification[T]
	if f.Equals != nil {
		specs = append(specs, Equals(project, *f.Equals))
	}
	if f.Contains != nil {
		specs = append(specs, Contains(project, *f.Contains))
	}
	if f.StartsWith != nil {
		specs = append(specs, StartsWith(project, *f.StartsWith))
	}
	return All(specs...)
}

// Value compiles a ValueFilter against one projected field.
func Value[T any, V comparable](f *ValueFilter[V], project func(T) V) Specification[T] {
	if f.IsEmpty() {
		return AllowAll[T]()
	}
	return EqualTo(project, *f.Equals)
}
