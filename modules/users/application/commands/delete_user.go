package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// DeleteUserCommand represents the intent to delete a user.
type DeleteUserCommand struct {
	UserID string
}

// DeleteUserHandler handles the DeleteUserCommand.
type DeleteUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewDeleteUserHandler(repo domain.UserRepository, publisher events.Publisher, logger *slog.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{
		repo:      repo,
		publisher: publisher,
		logger:    loggerOrDefault(logger),
	}
}

// Handle executes the delete user use case.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	// Verify user exists
	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	user.Delete()

	if err := h.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	publishDomainEvents(ctx, h.publisher, h.logger, user)

	return nil
}
