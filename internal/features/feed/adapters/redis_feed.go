package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/orders/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisFeed implements the ChangeFeed interface using Redis pub/sub.
// The storage layer publishes one JSON ChangeEvent per order row change on a
// well-known channel.
type RedisFeed struct {
	// client is the shared Redis connection.
	client *redis.Client
	// channel is the pub/sub channel carrying order changes.
	channel string
}

// NewRedisFeed creates a new Redis-backed change feed.
func NewRedisFeed(client *redis.Client, channel string) *RedisFeed {
	return &RedisFeed{
		client:  client,
		channel: channel,
	}
}

// Subscribe opens a pub/sub subscription and decodes incoming messages into
// change events. Malformed payloads are logged and skipped; they never break
// the subscription.
func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan domain.ChangeEvent, error) {
	sub := f.client.Subscribe(ctx, f.channel)

	// Force the SUBSCRIBE round trip so connection errors surface here
	// instead of as a silently empty channel.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", f.channel, err)
	}

	events := make(chan domain.ChangeEvent)

	go func() {
		defer close(events)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event domain.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logger.Get().Warn("Dropping malformed change feed payload",
						zap.String("channel", f.channel),
						zap.Error(err),
					)
					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				// Cancellation must release an idle subscription too.
				return
			}
		}
	}()

	return events, nil
}
