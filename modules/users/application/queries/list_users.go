package queries

import (
	"context"
	"fmt"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// ListUsersQuery represents a request for every user row.
type ListUsersQuery struct{}

// ListUsersHandler handles ListUsersQuery.
type ListUsersHandler struct {
	repo domain.UserRepository
}

func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query. The result is never nil.
func (h *ListUsersHandler) Handle(ctx context.Context, _ ListUsersQuery) ([]*UserDTO, error) {
	users, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	dtos := make([]*UserDTO, len(users))
	for i, user := range users {
		dtos[i] = toUserDTO(user)
	}
	return dtos, nil
}
