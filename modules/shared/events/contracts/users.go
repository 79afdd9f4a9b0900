// Package contracts defines public event contracts for inter-module communication.
// Modules should import event types from here, NOT from other module's domain packages.
package contracts

import "github.com/BasavarajuVB/User-management-backend/modules/shared/events"

// User module event types.
// These are the "public API" of the users module for event-driven communication.
const (
	UserCreatedEventType events.EventType = "users.UserCreated"
	UserUpdatedEventType events.EventType = "users.UserUpdated"
	UserDeletedEventType events.EventType = "users.UserDeleted"
)

// UserSnapshot is the state of a user row carried by created/updated events.
type UserSnapshot struct {
	UserID     int64  `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// UserCreatedEvent is published after a user row has been inserted.
type UserCreatedEvent struct {
	events.BaseEvent
	UserSnapshot
}

// UserUpdatedEvent is published after a user row has been overwritten.
type UserUpdatedEvent struct {
	events.BaseEvent
	UserSnapshot
}

// UserDeletedEvent is the public contract for user deletion events.
// Other modules should use this type to handle user deletions.
type UserDeletedEvent struct {
	events.BaseEvent
	UserID int64 `json:"user_id"`
}
