package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// UpdateUserCommand represents the intent to overwrite a user's columns.
type UpdateUserCommand struct {
	UserID     string
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
}

// UpdateUserHandler handles the UpdateUserCommand.
type UpdateUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewUpdateUserHandler(repo domain.UserRepository, publisher events.Publisher, logger *slog.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{
		repo:      repo,
		publisher: publisher,
		logger:    loggerOrDefault(logger),
	}
}

// Handle executes the update user use case.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	// Verify user exists
	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	user.UpdateProfile(domain.Profile{
		FirstName:  domain.NewText(cmd.FirstName),
		LastName:   domain.NewText(cmd.LastName),
		Email:      domain.NewText(cmd.Email),
		Department: domain.NewText(cmd.Department),
	})

	if err := h.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	publishDomainEvents(ctx, h.publisher, h.logger, user)

	return nil
}
