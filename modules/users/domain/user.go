// Package domain contains the business entities and rules for users.
// This is the innermost layer - it has no dependencies on outer layers.
package domain

import (
	shareddomain "github.com/BasavarajuVB/User-management-backend/modules/shared/domain"
)

// Profile holds the writable columns of a user row.
type Profile struct {
	FirstName  Text
	LastName   Text
	Email      Text
	Department Text
}

// User is the aggregate root for the users bounded context.
type User struct {
	shareddomain.AggregateRoot

	id      UserID
	profile Profile
}

// NewUser creates a user that has not been stored yet.
// Its id is assigned by the store; call MarkCreated once the insert succeeded.
func NewUser(profile Profile) *User {
	return &User{profile: profile}
}

// Reconstitute recreates a User from persistence.
// Used by repositories to rebuild aggregates from stored data.
func Reconstitute(id UserID, profile Profile) *User {
	return &User{id: id, profile: profile}
}

// Getters - expose state without allowing direct mutation

func (u *User) ID() UserID       { return u.id }
func (u *User) Profile() Profile { return u.profile }
func (u *User) FirstName() Text  { return u.profile.FirstName }
func (u *User) LastName() Text   { return u.profile.LastName }
func (u *User) Email() Text      { return u.profile.Email }
func (u *User) Department() Text { return u.profile.Department }

// MarkCreated records the id generated by the store and raises UserCreatedEvent.
func (u *User) MarkCreated(id UserID) {
	u.id = id
	u.AddDomainEvent(NewUserCreatedEvent(u))
}

// UpdateProfile replaces every writable column and raises UserUpdatedEvent.
func (u *User) UpdateProfile(profile Profile) {
	u.profile = profile
	u.AddDomainEvent(NewUserUpdatedEvent(u))
}

// Delete raises UserDeletedEvent. Rows are removed, not soft-deleted.
func (u *User) Delete() {
	u.AddDomainEvent(NewUserDeletedEvent(u.id))
}
