package ports

import (
	"context"

	"order-pulse/internal/features/notify/domain"
)

// EmailSender delivers one fully-built email payload.
// This is a Secondary Port (Driven Port); all gating and templating decisions
// happen before it is called.
type EmailSender interface {
	// Send performs one outbound delivery attempt.
	Send(ctx context.Context, payload domain.EmailPayload) error
}

// WhatsAppSender delivers one fully-built WhatsApp template message.
type WhatsAppSender interface {
	// Send performs one outbound delivery attempt.
	Send(ctx context.Context, message domain.WhatsAppMessage) error
}
