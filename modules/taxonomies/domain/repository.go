package domain

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// TaxonomyRepository defines the persistence interface for taxonomies.
// This is a port - defined in domain, implemented in infrastructure.
type TaxonomyRepository interface {
	// Save persists a taxonomy (create or update). Last write wins.
	Save(ctx context.Context, taxonomy *Taxonomy) error

	// FindByID retrieves a taxonomy by ID.
	// Returns (nil, nil) if the taxonomy doesn't exist.
	FindByID(ctx context.Context, id types.TaxonomyID) (*Taxonomy, error)

	// Query returns taxonomies satisfying spec, oldest first.
	Query(ctx context.Context, spec specification.Specification[*Taxonomy], limit, offset int) ([]*Taxonomy, error)

	// Count returns the number of taxonomies satisfying spec.
	Count(ctx context.Context, spec specification.Specification[*Taxonomy]) (int, error)

	// Delete removes a taxonomy. Deleting an absent taxonomy is not an error.
	Delete(ctx context.Context, id types.TaxonomyID) error
}
