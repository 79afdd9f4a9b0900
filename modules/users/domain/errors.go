package domain

import "errors"

// Domain errors - business rule violations.
// These errors are part of the domain language.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Email errors
	ErrEmailExists = errors.New("user with this email already exists")

	// Storage constraint errors raised by stores that enforce the table
	// constraints themselves (the in-memory store).
	ErrFieldRequired = errors.New("field must not be null")
	ErrEmailTaken    = errors.New("unique constraint failed: users.email")
)
