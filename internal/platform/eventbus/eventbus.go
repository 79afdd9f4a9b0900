// Package eventbus provides an in-memory event bus for inter-module communication.
// Events that must leave the process are forwarded by a subscriber (see the audit module's Kafka forwarder).
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
)

// InMemoryEventBus implements an in-process event bus.
// Publish delivers an event to every subscribed handler concurrently and
// returns once all of them have finished.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[events.EventType][]events.Handler
	logger   *slog.Logger
}

func New(logger *slog.Logger) *InMemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventBus{
		handlers: make(map[events.EventType][]events.Handler),
		logger:   logger,
	}
}

// Compile-time interface checks.
var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)

// Publish implements events.Publisher.
// Handler failures are logged and never returned; one failing handler does
// not stop the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	b.logger.DebugContext(ctx, "publishing event",
		slog.String("event_type", event.EventType().String()),
		slog.String("event_id", event.EventID()),
		slog.Int("handler_count", len(handlers)))

	var g errgroup.Group
	for _, handler := range handlers {
		g.Go(func() error {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.ErrorContext(ctx, "event handler failed",
					slog.String("event_type", event.EventType().String()),
					slog.String("event_id", event.EventID()),
					slog.Any("error", err))
			}
			return nil
		})
	}
	return g.Wait()
}

// Subscribe implements events.Subscriber.
func (b *InMemoryEventBus) Subscribe(eventType events.EventType, handler events.Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed to event", slog.String("event_type", eventType.String()))

	return nil
}
