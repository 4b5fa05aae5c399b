package service

import (
	"context"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/orders/domain"

	"go.uber.org/zap"
)

// Announcer raises a UI broadcast for each newly inserted pending order.
// Updates into pending from another status are deliberately ignored: the
// announcement means "new incoming order", not "now pending".
type Announcer struct {
	// hub receives the broadcasts.
	hub *Hub
}

// NewAnnouncer creates a new Announcer publishing to the given hub.
func NewAnnouncer(hub *Hub) *Announcer {
	return &Announcer{
		hub: hub,
	}
}

// OnSubscribed implements EventConsumer. Inserts missed while disconnected
// are not retroactively announced.
func (a *Announcer) OnSubscribed(ctx context.Context) {}

// OnChange implements EventConsumer. At most one broadcast per insert event.
func (a *Announcer) OnChange(ctx context.Context, event domain.ChangeEvent) {
	if event.Kind != domain.EventInsert || event.New == nil {
		return
	}
	if event.New.Status != domain.OrderStatusPending {
		return
	}

	logger.Get().Info("Announcing new order",
		zap.String("order_id", event.New.ID),
		zap.Float64("total", event.New.Total),
	)

	a.hub.Broadcast(Event{
		Name: EventNewOrder,
		Data: NewOrderPayload{
			CustomerName: event.New.CustomerName,
			Total:        event.New.Total,
		},
	})
}
