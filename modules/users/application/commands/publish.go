package commands

import (
	"context"
	"log/slog"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// publishDomainEvents drains the aggregate's events after the store write.
// The row is already committed, so a publish failure is logged and the
// command still succeeds.
func publishDomainEvents(ctx context.Context, publisher events.Publisher, logger *slog.Logger, user *domain.User) {
	defer user.ClearDomainEvents()

	if publisher == nil {
		return
	}
	for _, event := range user.DomainEvents() {
		if err := publisher.Publish(ctx, event); err != nil {
			logger.Error("failed to publish domain event",
				slog.String("event_type", event.EventType().String()),
				slog.String("event_id", event.EventID()),
				slog.String("user_id", user.ID().String()),
				slog.Any("error", err))
		}
	}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
