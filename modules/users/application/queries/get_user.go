// Package queries contains read use cases for the users module.
// Queries return data and don't change state (CQRS pattern).
package queries

import (
	"context"
	"fmt"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// UserDTO is the read model for one row of the users table.
// Field names follow the table's column names.
type UserDTO struct {
	ID         int64       `json:"id"`
	FirstName  domain.Text `json:"firstName"`
	LastName   domain.Text `json:"lastName"`
	Email      domain.Text `json:"email"`
	Department domain.Text `json:"department"`
}

// GetUserQuery represents a request to get a user by ID.
type GetUserQuery struct {
	UserID string
}

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	repo domain.UserRepository
}

func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query.
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*UserDTO, error) {
	userID, err := domain.ParseUserID(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserDTO(user), nil
}

func toUserDTO(user *domain.User) *UserDTO {
	return &UserDTO{
		ID:         user.ID().Int64(),
		FirstName:  user.FirstName(),
		LastName:   user.LastName(),
		Email:      user.Email(),
		Department: user.Department(),
	}
}
