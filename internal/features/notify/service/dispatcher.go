package service

import (
	"context"
	"strings"
	"sync"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/notify/domain"
	"order-pulse/internal/features/notify/ports"
	orders "order-pulse/internal/features/orders/domain"

	"go.uber.org/zap"
)

// Dispatcher decides, per channel, whether and what to notify for a status
// transition and executes delivery. Channels are independent: one channel's
// gating or failure never affects the other, and nothing is ever surfaced to
// the caller that changed the status.
type Dispatcher struct {
	// email delivers on the email channel.
	email ports.EmailSender
	// whatsapp delivers on the WhatsApp channel.
	whatsapp ports.WhatsAppSender
}

// NewDispatcher creates a new Dispatcher over the two channel senders.
func NewDispatcher(email ports.EmailSender, whatsapp ports.WhatsAppSender) *Dispatcher {
	return &Dispatcher{
		email:    email,
		whatsapp: whatsapp,
	}
}

// Notify dispatches notifications for an order that just transitioned to
// newStatus. Fire-and-forget: it returns immediately and the business
// transaction never waits on delivery. Once started, the attempts run to
// completion; there is no cancellation.
func (d *Dispatcher) Notify(order orders.Order, newStatus orders.OrderStatus, reason string) {
	go d.dispatch(context.Background(), order, newStatus, reason)
}

// dispatch fans out to both channels as independent attempts, joined only so
// both finish before the goroutine exits.
func (d *Dispatcher) dispatch(ctx context.Context, order orders.Order, newStatus orders.OrderStatus, reason string) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		d.sendEmail(ctx, order, newStatus)
	}()

	go func() {
		defer wg.Done()
		d.sendWhatsApp(ctx, order, newStatus, reason)
	}()

	wg.Wait()
}

// sendEmail runs the email channel's gating and delivery for one transition.
func (d *Dispatcher) sendEmail(ctx context.Context, order orders.Order, newStatus orders.OrderStatus) {
	template, ok := domain.EmailTemplateFor(newStatus)
	if !ok {
		return
	}

	if !order.NotifyEmail || strings.TrimSpace(order.CustomerEmail) == "" {
		logger.Get().Debug("Skipping email notification",
			zap.String("order_id", order.ID),
			zap.String("status", string(newStatus)),
			zap.Bool("opted_in", order.NotifyEmail),
		)
		return
	}

	payload := domain.BuildEmailPayload(order, template)
	if err := d.email.Send(ctx, payload); err != nil {
		logger.Get().Error("Notification delivery failed",
			zap.String("channel", "email"),
			zap.String("order_id", order.ID),
			zap.String("status", string(newStatus)),
			zap.Error(err),
		)
		return
	}

	logger.Get().Info("Notification sent",
		zap.String("channel", "email"),
		zap.String("order_id", order.ID),
		zap.String("template", string(template)),
	)
}

// sendWhatsApp runs the WhatsApp channel's gating and delivery for one
// transition. The cancellation reason only reaches the cancellation template.
func (d *Dispatcher) sendWhatsApp(ctx context.Context, order orders.Order, newStatus orders.OrderStatus, reason string) {
	template, ok := domain.WhatsAppTemplateFor(newStatus)
	if !ok {
		return
	}

	if !order.NotifyWhatsApp || strings.TrimSpace(order.CustomerPhone) == "" {
		logger.Get().Debug("Skipping whatsapp notification",
			zap.String("order_id", order.ID),
			zap.String("status", string(newStatus)),
			zap.Bool("opted_in", order.NotifyWhatsApp),
		)
		return
	}

	message := domain.BuildWhatsAppMessage(order, template, reason)
	if message.To == "" {
		return
	}

	if err := d.whatsapp.Send(ctx, message); err != nil {
		logger.Get().Error("Notification delivery failed",
			zap.String("channel", "whatsapp"),
			zap.String("order_id", order.ID),
			zap.String("status", string(newStatus)),
			zap.Error(err),
		)
		return
	}

	logger.Get().Info("Notification sent",
		zap.String("channel", "whatsapp"),
		zap.String("order_id", order.ID),
		zap.String("template", string(template)),
	)
}
