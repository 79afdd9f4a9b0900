// Package commands contains write use cases for the users module.
// Commands change state and typically don't return data (except IDs).
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// CreateUserCommand represents the intent to create a new user.
// Nil fields are stored as null.
type CreateUserCommand struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
}

func (c CreateUserCommand) profile() domain.Profile {
	return domain.Profile{
		FirstName:  domain.NewText(c.FirstName),
		LastName:   domain.NewText(c.LastName),
		Email:      domain.NewText(c.Email),
		Department: domain.NewText(c.Department),
	}
}

// CreateUserHandler handles the CreateUserCommand.
type CreateUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewCreateUserHandler(repo domain.UserRepository, publisher events.Publisher, logger *slog.Logger) *CreateUserHandler {
	return &CreateUserHandler{
		repo:      repo,
		publisher: publisher,
		logger:    loggerOrDefault(logger),
	}
}

// Handle executes the create user use case and returns the generated id.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (domain.UserID, error) {
	profile := cmd.profile()

	// Check for existing email
	exists, err := h.repo.ExistsByEmail(ctx, profile.Email)
	if err != nil {
		return 0, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return 0, domain.ErrEmailExists
	}

	user := domain.NewUser(profile)

	id, err := h.repo.Create(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}
	user.MarkCreated(id)

	publishDomainEvents(ctx, h.publisher, h.logger, user)

	return id, nil
}
