// Package queries contains read use cases for the taxonomies module.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// TaxonomyDTO is a read model for taxonomy data.
type TaxonomyDTO struct {
	ID          string     `json:"id"`
	ParentID    *string    `json:"parent_id,omitempty"`
	Name        string     `json:"name"`
	Visible     bool       `json:"visible"`
	Description *string    `json:"description,omitempty"`
	Version     uint64     `json:"version"`
	Deleted     bool       `json:"deleted"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// GetTaxonomyQuery retrieves a taxonomy by ID.
type GetTaxonomyQuery struct {
	TaxonomyID types.TaxonomyID
}

type GetTaxonomyHandler struct {
	repo domain.TaxonomyRepository
}

func NewGetTaxonomyHandler(repo domain.TaxonomyRepository) *GetTaxonomyHandler {
	return &GetTaxonomyHandler{repo: repo}
}

// Handle returns nil when the taxonomy does not exist.
func (h *GetTaxonomyHandler) Handle(ctx context.Context, query GetTaxonomyQuery) (*TaxonomyDTO, error) {
	taxonomy, err := h.repo.FindByID(ctx, query.TaxonomyID)
	if err != nil {
		return nil, fmt.Errorf("finding taxonomy: %w", err)
	}
	if taxonomy == nil {
		return nil, nil
	}
	return ToTaxonomyDTO(taxonomy), nil
}

// ToTaxonomyDTO maps the aggregate to its read model.
func ToTaxonomyDTO(t *domain.Taxonomy) *TaxonomyDTO {
	dto := &TaxonomyDTO{
		ID:        t.ID().String(),
		Name:      t.Name().String(),
		Visible:   t.Visible(),
		Version:   t.Version(),
		Deleted:   t.IsDeleted(),
		Status:    t.Deletion().Status(),
		CreatedAt: t.Timestamps().CreatedAt(),
	}
	if parent, ok := t.ParentID(); ok {
		s := parent.String()
		dto.ParentID = &s
	}
	if d, ok := t.Description(); ok {
		s := d.String()
		dto.Description = &s
	}
	if u, ok := t.Timestamps().UpdatedAt(); ok {
		dto.UpdatedAt = &u
	}
	if d, ok := t.Deletion().DeletedAt(); ok {
		dto.DeletedAt = &d
	}
	return dto
}
