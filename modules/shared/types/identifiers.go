// Package types provides shared value objects and type definitions
// used across multiple modules (Shared Kernel pattern).
package types

import (
	"bytes"

	"github.com/google/uuid"
)

// ID is a UUID tagged with the aggregate kind it identifies.
// IDs of different kinds are distinct types and cannot be compared.
type ID[K any] struct {
	value uuid.UUID
}

// NewID mints a fresh random identifier.
func NewID[K any]() ID[K] {
	return ID[K]{value: uuid.New()}
}

// IDFromUUID wraps an externally supplied raw UUID.
func IDFromUUID[K any](u uuid.UUID) ID[K] {
	return ID[K]{value: u}
}

// ParseID parses the canonical string form of an identifier.
func ParseID[K any](s string) (ID[K], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[K]{}, ErrInvalidID
	}
	return ID[K]{value: u}, nil
}

func (id ID[K]) UUID() uuid.UUID { return id.value }
func (id ID[K]) String() string  { return id.value.String() }
func (id ID[K]) IsZero() bool    { return id.value == uuid.Nil }

// Compare orders identifiers by their raw bytes.
func (id ID[K]) Compare(other ID[K]) int {
	return bytes.Compare(id.value[:], other.value[:])
}

type (
	businessKind struct{}
	taxonomyKind struct{}
	termKind     struct{}
	userKind     struct{}
)

// Identifier types for each bounded context. They live in the shared kernel
// because terms reference taxonomies and users reference terms.
type (
	BusinessID = ID[businessKind]
	TaxonomyID = ID[taxonomyKind]
	TermID     = ID[termKind]
	UserID     = ID[userKind]
)

func NewBusinessID() BusinessID { return NewID[businessKind]() }
func NewTaxonomyID() TaxonomyID { return NewID[taxonomyKind]() }
func NewTermID() TermID         { return NewID[termKind]() }
func NewUserID() UserID         { return NewID[userKind]() }

func ParseBusinessID(s string) (BusinessID, error) { return ParseID[businessKind](s) }
func ParseTaxonomyID(s string) (TaxonomyID, error) { return ParseID[taxonomyKind](s) }
func ParseTermID(s string) (TermID, error)         { return ParseID[termKind](s) }
func ParseUserID(s string) (UserID, error)         { return ParseID[userKind](s) }
