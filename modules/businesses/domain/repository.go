package domain

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/specification"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// BusinessRepository defines the persistence interface for businesses.
// This is a port - defined in domain, implemented in infrastructure.
type BusinessRepository interface {
	// Save persists a business (create or update). Last write wins.
	Save(ctx context.Context, business *Business) error

	// FindByID retrieves a business by ID.
	// Returns (nil, nil) if the business doesn't exist.
	FindByID(ctx context.Context, id types.BusinessID) (*Business, error)

	// Query returns businesses satisfying spec, oldest first.
	Query(ctx context.Context, spec specification.Specification[*Business], limit, offset int) ([]*Business, error)

	// Count returns the number of businesses satisfying spec.
	Count(ctx context.Context, spec specification.Specification[*Business]) (int, error)

	// Delete removes a business. Deleting an absent business is not an error.
	Delete(ctx context.Context, id types.BusinessID) error
}

// HasTag matches businesses whose features carry tag.
func HasTag(tag string) specification.Specification[*Business] {
	return specification.Func[*Business](func(b *Business) bool {
		f, ok := b.Features()
		return ok && f.HasTag(tag)
	})
}

// OnPlatform matches businesses with a profile on the social platform.
func OnPlatform(platform string) specification.Specification[*Business] {
	return specification.Func[*Business](func(b *Business) bool {
		s, ok := b.SocialMedia()
		if !ok {
			return false
		}
		_, found := s.Link(platform)
		return found
	})
}

// InCity matches businesses whose contact address is in city.
func InCity(city string) specification.Specification[*Business] {
	return specification.Func[*Business](func(b *Business) bool {
		c, ok := b.Contact()
		if !ok {
			return false
		}
		a, ok := c.Address()
		return ok && a.City() == city
	})
}
