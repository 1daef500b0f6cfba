// Package queries contains read use cases for the users module.
// Queries return DTOs and never change state.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// UserDTO is a read model for user data.
type UserDTO struct {
	ID            string              `json:"id"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	FullName      string              `json:"full_name"`
	Email         string              `json:"email"`
	CountryTermID string              `json:"country_term_id"`
	Demographics  map[string][]string `json:"demographics,omitempty"`
	Version       uint64              `json:"version"`
	Deleted       bool                `json:"deleted"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
	DeletedAt     *time.Time          `json:"deleted_at,omitempty"`
	Created       string              `json:"created"`
	Updated       string              `json:"updated"`
}

// GetUserQuery represents a request to get a user by ID.
type GetUserQuery struct {
	UserID types.UserID
}

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	repo domain.UserRepository
}

func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query. An absent user yields (nil, nil).
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*UserDTO, error) {
	user, err := h.repo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	return ToUserDTO(user), nil
}

func ToUserDTO(user *domain.User) *UserDTO {
	ts := user.Timestamps()
	dto := &UserDTO{
		ID:            user.ID().String(),
		FirstName:     user.FirstName().String(),
		LastName:      user.LastName().String(),
		FullName:      user.FullName(),
		Email:         user.Email().String(),
		CountryTermID: user.CountryTermID().String(),
		Version:       user.Version(),
		Deleted:       user.IsDeleted(),
		Status:        user.Deletion().Status(),
		CreatedAt:     ts.CreatedAt(),
		Created:       ts.CreatedHuman(),
		Updated:       ts.UpdatedHuman(),
	}
	if d, ok := user.Demographics(); ok {
		dto.Demographics = d.Map()
	}
	if u, ok := ts.UpdatedAt(); ok {
		dto.UpdatedAt = &u
	}
	if d, ok := user.Deletion().DeletedAt(); ok {
		dto.DeletedAt = &d
	}
	return dto
}
