// Package users provides user management functionality.
// This file defines the module's public API - the single interface
// that the composition root uses to interact with the users bounded context.
package users

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/application/commands"
	"github.com/BasavarajuVB/User-management-backend/modules/users/application/queries"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
	httphandler "github.com/BasavarajuVB/User-management-backend/modules/users/infrastructure/http"
	"github.com/BasavarajuVB/User-management-backend/modules/users/infrastructure/persistence"
)

// Module is the public API for the users bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: Domain Events (published after each write)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Config holds the module configuration.
type Config struct {
	// Repository is the user store. An in-memory store is used when nil.
	Repository     domain.UserRepository
	EventPublisher events.Publisher
	Logger         *slog.Logger
}

// module implements the Module interface.
type module struct {
	repository        domain.UserRepository
	createUserHandler *commands.CreateUserHandler
	updateUserHandler *commands.UpdateUserHandler
	deleteUserHandler *commands.DeleteUserHandler
	getUserHandler    *queries.GetUserHandler
	listUsersHandler  *queries.ListUsersHandler
	logger            *slog.Logger
}

// New creates a new users module with all dependencies wired.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "users")

	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	// Wire up command handlers
	createUserHandler := commands.NewCreateUserHandler(repository, cfg.EventPublisher, logger)
	updateUserHandler := commands.NewUpdateUserHandler(repository, cfg.EventPublisher, logger)
	deleteUserHandler := commands.NewDeleteUserHandler(repository, cfg.EventPublisher, logger)

	// Wire up query handlers
	getUserHandler := queries.NewGetUserHandler(repository)
	listUsersHandler := queries.NewListUsersHandler(repository)

	return &module{
		repository:        repository,
		createUserHandler: createUserHandler,
		updateUserHandler: updateUserHandler,
		deleteUserHandler: deleteUserHandler,
		getUserHandler:    getUserHandler,
		listUsersHandler:  listUsersHandler,
		logger:            logger,
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux,
		m.createUserHandler,
		m.updateUserHandler,
		m.deleteUserHandler,
		m.getUserHandler,
		m.listUsersHandler,
		m.logger,
	)
}

func (m *module) Ping(ctx context.Context) error {
	return m.repository.Ping(ctx)
}
