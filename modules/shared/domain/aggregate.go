// Package domain provides shared domain primitives.
package domain

import "github.com/BasavarajuVB/User-management-backend/modules/shared/events"

// AggregateRoot collects domain events raised by business methods.
// Embed it in aggregate structs; the application layer drains the events
// once the store write has succeeded.
//
// Example:
//
//	type User struct {
//	    domain.AggregateRoot
//	    id UserID
//	}
//
//	func (u *User) Delete() {
//	    u.AddDomainEvent(NewUserDeletedEvent(u.id))
//	}
type AggregateRoot struct {
	domainEvents []events.Event
}

// AddDomainEvent records an event raised by the aggregate.
func (a *AggregateRoot) AddDomainEvent(event events.Event) {
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns the recorded events in the order they were raised.
func (a *AggregateRoot) DomainEvents() []events.Event {
	return a.domainEvents
}

// ClearDomainEvents drops recorded events after they have been published.
func (a *AggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
