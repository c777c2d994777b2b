package createevent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nfrund/collectives/internal/pubsub"
)

// Subscriber records created events in the application log.
type Subscriber struct {
	subscriber pubsub.Subscriber
	logger     *slog.Logger
}

func NewSubscriber(sub pubsub.Subscriber, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{subscriber: sub, logger: logger}
}

// Start subscribes to TopicEventCreated until ctx is canceled.
func (s *Subscriber) Start(ctx context.Context) error {
	s.logger.Info("Starting createevent subscriber")
	err := pubsub.Subscribe(ctx, s.subscriber, TopicEventCreated, s.handleEventCreated)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Subscriber) handleEventCreated(ctx context.Context, msg pubsub.Message, event EventCreated) error {
	s.logger.InfoContext(ctx, "Collective event created",
		"collective", event.CollectiveSlug,
		"event", event.EventID,
		"slug", event.Slug,
		"starts_at", event.StartsAt,
		"created_by", msg.UserID,
	)
	return nil
}
