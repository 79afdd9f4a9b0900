package domain

import (
	"context"
)

// UserRepository defines the persistence interface for users.
// This is a port - defined in domain, implemented in infrastructure.
type UserRepository interface {
	// FindAll retrieves every user ordered by id.
	FindAll(ctx context.Context) ([]*User, error)

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound if user doesn't exist.
	FindByID(ctx context.Context, id UserID) (*User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email Text) (bool, error)

	// Create inserts a new row and returns the generated id.
	Create(ctx context.Context, user *User) (UserID, error)

	// Update overwrites every writable column of an existing row.
	// Returns ErrUserNotFound if no row was affected.
	Update(ctx context.Context, user *User) error

	// Delete removes a row.
	// Returns ErrUserNotFound if no row was affected.
	Delete(ctx context.Context, id UserID) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
