// Package queries contains read use cases for the terms module.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// TermDTO is a read model for term data.
type TermDTO struct {
	ID          string     `json:"id"`
	TaxonomyID  string     `json:"taxonomy_id"`
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

// GetTermQuery retrieves a term by ID.
type GetTermQuery struct {
	TermID types.TermID
}

type GetTermHandler struct {
	repo domain.TermRepository
}

func NewGetTermHandler(repo domain.TermRepository) *GetTermHandler {
	return &GetTermHandler{repo: repo}
}

// Handle returns nil when the term does not exist.
func (h *GetTermHandler) Handle(ctx context.Context, query GetTermQuery) (*TermDTO, error) {
	term, err := h.repo.FindByID(ctx, query.TermID)
	if err != nil {
		return nil, fmt.Errorf("finding term: %w", err)
	}
	if term == nil {
		return nil, nil
	}
	return ToTermDTO(term), nil
}

// ToTermDTO maps the aggregate to its read model.
func ToTermDTO(t *domain.Term) *TermDTO {
	dto := &TermDTO{
		ID:         t.ID().String(),
		TaxonomyID: t.TaxonomyID().String(),
		Name:       t.Name().String(),
		Visible:    t.Visible(),
		Version:    t.Version(),
		Deleted:    t.IsDeleted(),
		Status:     t.Deletion().Status(),
		CreatedAt:  t.Timestamps().CreatedAt(),
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
