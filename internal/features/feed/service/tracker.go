package service

import (
	"context"
	"sync"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/feed/ports"
	"order-pulse/internal/features/orders/domain"

	"go.uber.org/zap"
)

// Tracker maintains the live count of pending orders. The count is always
// replaced by a fresh authoritative read, never incremented or decremented in
// place, so coalesced or reordered feed events cannot make it drift.
type Tracker struct {
	// counter performs the authoritative count-only read.
	counter ports.PendingCounter
	// publisher republishes the count to connected UI sessions; may be nil.
	publisher ports.CountPublisher

	mu sync.RWMutex
	// count is the last successfully read pending-order count.
	count int64
}

// NewTracker creates a Tracker seeded with an initial count so the UI never
// sees an empty-state flash before the first feed event arrives.
func NewTracker(counter ports.PendingCounter, publisher ports.CountPublisher, seed int64) *Tracker {
	return &Tracker{
		counter:   counter,
		publisher: publisher,
		count:     seed,
	}
}

// Current returns the most recently read pending-order count.
func (t *Tracker) Current() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Refresh re-reads the pending count and replaces the tracked value.
// Last completed read wins. On a failed or nonsensical read the previous
// value is kept.
func (t *Tracker) Refresh(ctx context.Context) {
	count, err := t.counter.CountPending(ctx)
	if err != nil {
		logger.Get().Warn("Pending count refresh failed, keeping previous value",
			zap.Int64("previous", t.Current()),
			zap.Error(err),
		)
		return
	}

	if count < 0 {
		return
	}

	t.mu.Lock()
	t.count = count
	t.mu.Unlock()

	if t.publisher != nil {
		t.publisher.PublishPendingCount(count)
	}
}

// OnSubscribed implements EventConsumer. A fresh subscription re-reads the
// count to self-heal after any events missed while disconnected.
func (t *Tracker) OnSubscribed(ctx context.Context) {
	t.Refresh(ctx)
}

// OnChange implements EventConsumer. Every change event triggers a full
// re-read; the event payload is deliberately not trusted for counting.
func (t *Tracker) OnChange(ctx context.Context, _ domain.ChangeEvent) {
	t.Refresh(ctx)
}
