package ports

import (
	"context"

	"order-pulse/internal/features/orders/domain"
)

// ChangeFeed provides a live subscription to order row changes.
// This is a Secondary Port (Driven Port).
type ChangeFeed interface {
	// Subscribe opens one subscription to the orders change feed. The
	// returned channel closes when the subscription is lost or the context
	// is cancelled; callers own reconnection.
	Subscribe(ctx context.Context) (<-chan domain.ChangeEvent, error)
}

// PendingCounter performs the authoritative count-only read of orders in the
// pending status.
type PendingCounter interface {
	// CountPending returns the number of orders currently pending.
	CountPending(ctx context.Context) (int64, error)
}

// EventConsumer receives change feed events fanned out by the listener.
type EventConsumer interface {
	// OnSubscribed fires on every successful (re)subscribe, before any event
	// is delivered.
	OnSubscribed(ctx context.Context)
	// OnChange fires once per received change event.
	OnChange(ctx context.Context, event domain.ChangeEvent)
}

// CountPublisher republishes the pending-order count to connected UI sessions.
type CountPublisher interface {
	// PublishPendingCount pushes a fresh count value to all sessions.
	PublishPendingCount(count int64)
}
