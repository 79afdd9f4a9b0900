package domain

import (
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events/contracts"
)

// Domain events are defined as public contracts so other modules can
// consume them without importing this package.

func snapshot(user *User) contracts.UserSnapshot {
	return contracts.UserSnapshot{
		UserID:     user.ID().Int64(),
		FirstName:  user.FirstName().String(),
		LastName:   user.LastName().String(),
		Email:      user.Email().String(),
		Department: user.Department().String(),
	}
}

func NewUserCreatedEvent(user *User) contracts.UserCreatedEvent {
	return contracts.UserCreatedEvent{
		BaseEvent:    events.NewBaseEvent(contracts.UserCreatedEventType, user.ID().String()),
		UserSnapshot: snapshot(user),
	}
}

func NewUserUpdatedEvent(user *User) contracts.UserUpdatedEvent {
	return contracts.UserUpdatedEvent{
		BaseEvent:    events.NewBaseEvent(contracts.UserUpdatedEventType, user.ID().String()),
		UserSnapshot: snapshot(user),
	}
}

func NewUserDeletedEvent(userID UserID) contracts.UserDeletedEvent {
	return contracts.UserDeletedEvent{
		BaseEvent: events.NewBaseEvent(contracts.UserDeletedEventType, userID.String()),
		UserID:    userID.Int64(),
	}
}
