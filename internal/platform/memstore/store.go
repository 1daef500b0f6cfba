// Package memstore provides the generic in-memory storage the module
// repositories are built on. Useful for testing and development.
package memstore

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/rai/clean-directory-go/modules/shared/specification"
)

// Schema tells a Store how to handle its records.
type Schema[A any] struct {
	// Key returns the record's unique key.
	Key func(A) string
	// CreatedAt is the primary sort key of queries.
	CreatedAt func(A) time.Time
	// Clone returns a copy that shares no mutable state with the original.
	Clone func(A) A
}

// Store keeps records by key. Records are cloned on the way in and on the
// way out, so callers never share state with what is stored.
type Store[A any] struct {
	mu      sync.RWMutex
	schema  Schema[A]
	records map[string]A
}

func New[A any](schema Schema[A]) *Store[A] {
	return &Store[A]{
		schema:  schema,
		records: make(map[string]A),
	}
}

// Save inserts or replaces the record under its key.
func (s *Store[A]) Save(record A) {
	c := s.schema.Clone(record)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[s.schema.Key(c)] = c
}

// Get returns a copy of the record stored under key.
func (s *Store[A]) Get(key string) (A, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		var zero A
		return zero, false
	}
	return s.schema.Clone(record), true
}

// Delete removes the record under key. Removing an absent key is a no-op.
func (s *Store[A]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

// Len returns the number of stored records.
func (s *Store[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Query returns copies of the records satisfying spec, ordered by creation
// time and then by key, skipping offset and returning at most limit.
// A limit of zero yields an empty page.
func (s *Store[A]) Query(spec specification.Specification[A], limit, offset int) []A {
	if limit <= 0 {
		return []A{}
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	var matched []A
	for _, record := range s.records {
		if spec.IsSatisfiedBy(record) {
			matched = append(matched, record)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b A) int {
		if c := s.schema.CreatedAt(a).Compare(s.schema.CreatedAt(b)); c != 0 {
			return c
		}
		return cmp.Compare(s.schema.Key(a), s.schema.Key(b))
	})

	if offset >= len(matched) {
		return []A{}
	}
	end := len(matched)
	if limit < end-offset {
		end = offset + limit
	}

	page := make([]A, 0, end-offset)
	for _, record := range matched[offset:end] {
		page = append(page, s.schema.Clone(record))
	}
	return page
}

// Count returns the number of records satisfying spec.
func (s *Store[A]) Count(spec specification.Specification[A]) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, record := range s.records {
		if spec.IsSatisfiedBy(record) {
			n++
		}
	}
	return n
}
