// Package eventhandlers reacts to user lifecycle events.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
)

// Forwarder ships an event to an external sink.
type Forwarder interface {
	Forward(ctx context.Context, event events.Event) error
}

// UserEventHandler writes an audit log line for every user event, counts it
// and hands it to the forwarder when one is configured.
//
// It runs after the store write has committed, so a failure here never
// affects the HTTP response.
type UserEventHandler struct {
	logger    *slog.Logger
	counter   *prometheus.CounterVec
	forwarder Forwarder
}

// NewUserEventHandler creates the handler. counter and forwarder may be nil.
func NewUserEventHandler(logger *slog.Logger, counter *prometheus.CounterVec, forwarder Forwarder) *UserEventHandler {
	return &UserEventHandler{
		logger:    logger,
		counter:   counter,
		forwarder: forwarder,
	}
}

// Handle processes a users.* event.
func (h *UserEventHandler) Handle(ctx context.Context, event events.Event) error {
	h.logger.InfoContext(ctx, "user event",
		slog.String("event_type", event.EventType().String()),
		slog.String("event_id", event.EventID()),
		slog.String("user_id", event.AggregateID()),
		slog.Time("occurred_at", event.OccurredAt()))

	if h.counter != nil {
		h.counter.WithLabelValues(event.EventType().String()).Inc()
	}

	if h.forwarder == nil {
		return nil
	}
	if err := h.forwarder.Forward(ctx, event); err != nil {
		return fmt.Errorf("forwarding %s: %w", event.EventType(), err)
	}
	return nil
}
