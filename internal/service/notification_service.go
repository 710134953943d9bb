package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/events"
	"github.com/spec-kit/adoptafacil/internal/observability"
)

// NotificationService reacts to registration events: it logs them, counts them and,
// when a publisher is configured, forwards them to the message broker.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  events.Publisher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewNotificationService creates the service. publisher and metrics may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher events.Publisher, metrics *observability.Metrics, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		metrics:    metrics,
		logger:     orNop(logger),
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handle("user"))
	n.dispatcher.Subscribe(events.EventAdopterRegistered, n.handle("adopter"))
	n.dispatcher.Subscribe(events.EventDonationReceived, n.handle("donation"))
}

func (n *NotificationService) handle(entity string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info(string(event.Type),
			zap.String("event_id", event.ID),
			zap.String("entity", entity),
			zap.Int64("entity_id", event.EntityID),
			zap.Any("payload", event.Payload))
		n.metrics.RecordRegistration(entity)
		return n.forward(ctx, event)
	}
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil {
		return nil
	}
	if err := n.publisher.PublishEvent(ctx, event); err != nil {
		n.logger.Warn("forward event failed", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}
