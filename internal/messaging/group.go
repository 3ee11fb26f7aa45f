package messaging

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Runnable is a startable topic consumer.
type Runnable interface {
	Topic() string
	Start(ctx context.Context) error
	Shutdown() error
}

// ConsumerGroup manages the lifecycle of a set of consumers sharing one
// subscriber connection.
type ConsumerGroup struct {
	consumers  []Runnable
	subscriber message.Subscriber
	logger     *zap.Logger
}

// NewConsumerGroup creates an empty consumer group.
func NewConsumerGroup(subscriber message.Subscriber, logger *zap.Logger) *ConsumerGroup {
	return &ConsumerGroup{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Add registers a consumer with the group.
func (g *ConsumerGroup) Add(consumer Runnable) {
	g.consumers = append(g.consumers, consumer)
}

// Start starts all consumers. If any consumer fails to start, the ones
// already running are shut down before the error is returned.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	for i, consumer := range g.consumers {
		if err := consumer.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.consumers[j].Shutdown()
			}

			return fmt.Errorf("failed to start consumer for %s: %w", consumer.Topic(), err)
		}

		g.logger.Info("consumer started", zap.String("topic", consumer.Topic()))
	}

	return nil
}

// Shutdown stops all consumers and closes the shared subscriber, returning
// the first error encountered.
func (g *ConsumerGroup) Shutdown() error {
	g.logger.Info("shutting down consumer group")

	var firstErr error

	for _, consumer := range g.consumers {
		if err := consumer.Shutdown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := g.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
