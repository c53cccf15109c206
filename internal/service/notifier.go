package service

import (
	"context"
	"log/slog"

	"vibescore/internal/domain"
)

// sinkNotifier delivers a notification to every configured sink. Sinks fail
// independently and a failure never fails the check-in itself.
type sinkNotifier struct {
	queue  WebhookQueue
	broker BrokerPublisher
	logger *slog.Logger
}

// NewNotifier accepts nil sinks.
func NewNotifier(queue WebhookQueue, broker BrokerPublisher, logger *slog.Logger) Notifier {
	return &sinkNotifier{queue: queue, broker: broker, logger: logger}
}

func (n *sinkNotifier) Notify(ctx context.Context, p domain.WebhookPayload) {
	if n.queue != nil {
		if err := n.queue.Enqueue(ctx, p); err != nil {
			n.logger.Error("enqueue webhook failed", slog.String("kind", string(p.Kind)), slog.Any("error", err))
		} else {
			n.logger.Debug("webhook enqueued", slog.String("kind", string(p.Kind)), slog.String("user_id", p.UserID))
		}
	}
	if n.broker != nil {
		if err := n.broker.Publish(ctx, p); err != nil {
			n.logger.Error("broker publish failed", slog.String("kind", string(p.Kind)), slog.Any("error", err))
		}
	}
}
