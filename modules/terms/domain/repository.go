package domain

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// TermRepository defines the persistence interface for terms.
// This is a port - defined in domain, implemented in infrastructure.
type TermRepository interface {
	// Save persists a term (create or update). Last write wins.
	Save(ctx context.Context, term *Term) error

	// FindByID retrieves a term by ID.
	// Returns (nil, nil) if the term doesn't exist.
	FindByID(ctx context.Context, id types.TermID) (*Term, error)

	// Query returns terms satisfying spec, oldest first.
	Query(ctx context.Context, spec specification.Specification[*Term], limit, offset int) ([]*Term, error)

	// Count returns the number of terms satisfying spec.
	Count(ctx context.Context, spec specification.Specification[*Term]) (int, error)

	// Delete removes a term. Deleting an absent term is not an error.
	Delete(ctx context.Context, id types.TermID) error
}
