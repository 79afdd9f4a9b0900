// Package audit records user lifecycle events. It only consumes events and
// has no HTTP surface.
package audit

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BasavarajuVB/User-management-backend/modules/audit/application/eventhandlers"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events/contracts"
)

// Module represents the audit module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
	// EventsTotal counts events by type. Optional.
	EventsTotal *prometheus.CounterVec
	// Forwarder ships events out of the process. Optional.
	Forwarder eventhandlers.Forwarder
}

// New initializes the audit module and subscribes to user events.
func New(cfg Config) (*Module, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "audit")

	handler := eventhandlers.NewUserEventHandler(logger, cfg.EventsTotal, cfg.Forwarder)

	for _, eventType := range []events.EventType{
		contracts.UserCreatedEventType,
		contracts.UserUpdatedEventType,
		contracts.UserDeletedEventType,
	} {
		if err := cfg.EventSubscriber.Subscribe(eventType, handler); err != nil {
			return nil, fmt.Errorf("subscribing to %s: %w", eventType, err)
		}
	}

	return &Module{}, nil
}
