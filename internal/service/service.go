package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/events"
)

// Clock returns the current time. Tests replace it for deterministic timestamps.
type Clock func() time.Time

// SystemClock truncates to microseconds, the resolution Postgres stores.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// publish emits an event after a durable save. The save already succeeded, so a
// failing subscriber is logged rather than returned.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("entity_id", event.EntityID),
			zap.Error(err))
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func orSystem(clock Clock) Clock {
	if clock == nil {
		return SystemClock
	}
	return clock
}
