// Package queries contains read use cases for the businesses module.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// BusinessDTO is a read model for business data.
type BusinessDTO struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description,omitempty"`
	Contact     *domain.ContactSnapshot  `json:"contact,omitempty"`
	SocialMedia map[string]string        `json:"social_media,omitempty"`
	Features    *domain.FeaturesSnapshot `json:"features,omitempty"`
	Version     uint64                   `json:"version"`
	Deleted     bool                     `json:"deleted"`
	Status      string                   `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   *time.Time               `json:"updated_at,omitempty"`
	DeletedAt   *time.Time               `json:"deleted_at,omitempty"`
	CreatedDate string                   `json:"created_date"`
	UpdatedDate string                   `json:"updated_date"`
}

// GetBusinessQuery retrieves a business by ID.
type GetBusinessQuery struct {
	BusinessID types.BusinessID
}

type GetBusinessHandler struct {
	repo domain.BusinessRepository
}

func NewGetBusinessHandler(repo domain.BusinessRepository) *GetBusinessHandler {
	return &GetBusinessHandler{repo: repo}
}

// Handle returns nil when the business does not exist.
func (h *GetBusinessHandler) Handle(ctx context.Context, query GetBusinessQuery) (*BusinessDTO, error) {
	business, err := h.repo.FindByID(ctx, query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("finding business: %w", err)
	}
	if business == nil {
		return nil, nil
	}
	return ToBusinessDTO(business), nil
}

func ToBusinessDTO(b *domain.Business) *BusinessDTO {
	ts := b.Timestamps()
	dto := &BusinessDTO{
		ID:          b.ID().String(),
		Name:        b.Name().String(),
		Version:     b.Version(),
		Deleted:     b.IsDeleted(),
		Status:      b.Deletion().Status(),
		CreatedAt:   ts.CreatedAt(),
		CreatedDate: ts.CreatedDate(),
		UpdatedDate: ts.UpdatedDate(),
	}
	if d, ok := b.Description(); ok {
		s := d.String()
		dto.Description = &s
	}
	if c, ok := b.Contact(); ok {
		s := c.Snapshot()
		dto.Contact = &s
	}
	if sm, ok := b.SocialMedia(); ok {
		dto.SocialMedia = sm.Map()
	}
	if f, ok := b.Features(); ok {
		s := f.Snapshot()
		dto.Features = &s
	}
	if u, ok := ts.UpdatedAt(); ok {
		dto.UpdatedAt = &u
	}
	if d, ok := b.Deletion().DeletedAt(); ok {
		dto.DeletedAt = &d
	}
	return dto
}
