package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/eventbus"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
)

type testEvent struct {
	events.BaseEvent
}

type handlerFunc func(ctx context.Context, event events.Event) error

func (f handlerFunc) Handle(ctx context.Context, event events.Event) error {
	return f(ctx, event)
}

func newTestBus() *eventbus.InMemoryEventBus {
	return eventbus.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublish_DeliversToSubscribersOfType(t *testing.T) {
	bus := newTestBus()

	var created, deleted atomic.Int32
	bus.Subscribe("users.UserCreated", handlerFunc(func(ctx context.Context, e events.Event) error {
		created.Add(1)
		return nil
	}))
	bus.Subscribe("users.UserCreated", handlerFunc(func(ctx context.Context, e events.Event) error {
		created.Add(1)
		return nil
	}))
	bus.Subscribe("users.UserDeleted", handlerFunc(func(ctx context.Context, e events.Event) error {
		deleted.Add(1)
		return nil
	}))

	event := testEvent{events.NewBaseEvent("users.UserCreated", "1")}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := created.Load(); got != 2 {
		t.Errorf("expected 2 created deliveries, got %d", got)
	}
	if got := deleted.Load(); got != 0 {
		t.Errorf("expected no deleted deliveries, got %d", got)
	}
}

func TestPublish_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := newTestBus()

	var delivered atomic.Int32
	bus.Subscribe("users.UserUpdated", handlerFunc(func(ctx context.Context, e events.Event) error {
		return errors.New("broker unavailable")
	}))
	bus.Subscribe("users.UserUpdated", handlerFunc(func(ctx context.Context, e events.Event) error {
		delivered.Add(1)
		return nil
	}))

	err := bus.Publish(context.Background(), testEvent{events.NewBaseEvent("users.UserUpdated", "2")})

	if err != nil {
		t.Errorf("expected handler errors to be swallowed, got %v", err)
	}
	if delivered.Load() != 1 {
		t.Error("expected second handler to run")
	}
}

func TestPublish_NoSubscribers(t *testing.T) {
	bus := newTestBus()

	if err := bus.Publish(context.Background(), testEvent{events.NewBaseEvent("users.UserCreated", "1")}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
