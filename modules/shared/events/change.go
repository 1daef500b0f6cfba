package events

// Change records a field's value before and after an update.
type Change[T any] struct {
	Previous T `json:"previous"`
	Current  T `json:"current"`
}

func NewChange[T any](previous, current T) *Change[T] {
	return &Change[T]{Previous: previous, Current: current}
}
