package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log instead of Telegram.
// Used in development so local orders do not ping the manager chat.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event *OrderCreatedEvent) error {
	n.logger.Info("order notification",
		zap.Int64("order_id", event.OrderID),
		zap.String("message", FormatOrderMessage(event)),
	)

	return nil
}

// NewNotifier picks the notifier for the environment: development gets the
// log notifier, everything else posts to Telegram.
func NewNotifier(botToken, chatID, environment string, logger *zap.Logger) Notifier {
	if environment == "development" {
		return NewLogNotifier(logger)
	}

	return NewTelegramNotifier(botToken, chatID, logger)
}

// NewOrderCreatedHandler returns the consumer handler that forwards order
// events to the notifier. Delivery failures are surfaced so the message is
// retried; they never reach the ordering path.
func NewOrderCreatedHandler(notifier Notifier, logger *zap.Logger) func(ctx context.Context, event *OrderCreatedEvent) error {
	return func(ctx context.Context, event *OrderCreatedEvent) error {
		if err := notifier.Notify(ctx, event); err != nil {
			logger.Error("order notification failed",
				zap.Int64("order_id", event.OrderID),
				zap.Error(err),
			)

			return err
		}

		return nil
	}
}
