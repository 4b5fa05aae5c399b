package service

import (
	"context"
	"time"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/feed/ports"
	"order-pulse/internal/features/orders/domain"

	"go.uber.org/zap"
)

const (
	// reconnectMinDelay is the initial reconnect backoff.
	reconnectMinDelay = 1 * time.Second
	// reconnectMaxDelay caps the reconnect backoff.
	reconnectMaxDelay = 30 * time.Second
)

// Listener owns the single change feed subscription and fans every event out
// to its consumers. Subscription loss is handled with a capped exponential
// backoff reconnect loop; events published while disconnected are lost and
// are not retroactively delivered.
type Listener struct {
	// feed is the change feed subscription source.
	feed ports.ChangeFeed
	// consumers receive every event, in registration order.
	consumers []ports.EventConsumer
	// minDelay and maxDelay bound the reconnect backoff.
	minDelay time.Duration
	maxDelay time.Duration
}

// NewListener creates a new Listener fanning out to the given consumers.
func NewListener(feed ports.ChangeFeed, consumers ...ports.EventConsumer) *Listener {
	return &Listener{
		feed:      feed,
		consumers: consumers,
		minDelay:  reconnectMinDelay,
		maxDelay:  reconnectMaxDelay,
	}
}

// Run subscribes to the change feed and dispatches events until the context
// is cancelled. On every successful (re)subscribe it notifies consumers via
// OnSubscribed so they can re-read authoritative state.
func (l *Listener) Run(ctx context.Context) {
	delay := l.minDelay

	for {
		if ctx.Err() != nil {
			return
		}

		events, err := l.feed.Subscribe(ctx)
		if err != nil {
			logger.Get().Error("Change feed subscription failed",
				zap.Duration("retry_in", delay),
				zap.Error(err),
			)
			if !sleep(ctx, delay) {
				return
			}
			delay = min(delay*2, l.maxDelay)
			continue
		}

		delay = l.minDelay
		logger.Get().Info("Subscribed to order change feed")

		for _, consumer := range l.consumers {
			consumer.OnSubscribed(ctx)
		}

		if !l.consume(ctx, events) {
			return
		}
		logger.Get().Warn("Change feed subscription lost, reconnecting")
	}
}

// consume dispatches events until the subscription channel closes or the
// context is cancelled. It reports false on cancellation, true when the
// subscription was lost and a reconnect is due. Cancellation must interrupt
// an idle subscription too, so the receive itself watches the context.
func (l *Listener) consume(ctx context.Context, events <-chan domain.ChangeEvent) bool {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return ctx.Err() == nil
			}
			for _, consumer := range l.consumers {
				consumer.OnChange(ctx, event)
			}
		case <-ctx.Done():
			return false
		}
	}
}

// sleep waits for the given duration and reports false if the context was
// cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
