package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Publish delivers a typed event to its topic. Delivery outlives the caller's
// request: an order that was already accepted must still reach the kitchen
// even if the customer disconnects.
type Publish[T any] func(ctx context.Context, event *T) error

// NewPublishFunc creates a typed publish function bound to one topic.
func NewPublishFunc[T any](publisher message.Publisher, topic string) Publish[T] {
	return func(ctx context.Context, event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event for %s: %w", topic, err)
		}

		msg := message.NewMessage(uuid.NewString(), payload)
		msg.Metadata.Set("topic", topic)
		msg.SetContext(context.WithoutCancel(ctx))

		return publisher.Publish(topic, msg)
	}
}

// PublisherGroup owns the underlying publisher connection so the typed
// publish functions built from it share one lifecycle.
type PublisherGroup struct {
	publisher message.Publisher
}

// NewPublisherGroup creates a new publisher group.
func NewPublisherGroup(publisher message.Publisher) *PublisherGroup {
	return &PublisherGroup{publisher: publisher}
}

// Publisher returns the underlying message publisher for creating typed
// publish functions.
func (g *PublisherGroup) Publisher() message.Publisher {
	return g.publisher
}

// Shutdown closes the underlying publisher.
func (g *PublisherGroup) Shutdown() error {
	return g.publisher.Close()
}
