package domain

import (
	"strings"

	orders "order-pulse/internal/features/orders/domain"
)

// EmailTemplate identifies a message format on the email channel.
type EmailTemplate string

const (
	// EmailOrderPaid confirms the customer's payment.
	EmailOrderPaid EmailTemplate = "order_paid"
	// EmailOrderShipped announces the order is on its way.
	EmailOrderShipped EmailTemplate = "order_shipped"
	// EmailOrderDelivered confirms delivery.
	EmailOrderDelivered EmailTemplate = "order_delivered"
	// EmailOrderCancelled informs the customer of a cancellation.
	EmailOrderCancelled EmailTemplate = "order_cancelled"
)

// WhatsAppTemplate identifies an approved WhatsApp message template.
type WhatsAppTemplate string

const (
	// WhatsAppPaymentConfirmed confirms the customer's payment.
	WhatsAppPaymentConfirmed WhatsAppTemplate = "pago_confirmado"
	// WhatsAppOrderShipped announces the order is on its way.
	WhatsAppOrderShipped WhatsAppTemplate = "pedido_en_camino"
	// WhatsAppOrderDelivered confirms delivery.
	WhatsAppOrderDelivered WhatsAppTemplate = "pedido_entregado"
	// WhatsAppOrderCancelled informs the customer of a cancellation.
	WhatsAppOrderCancelled WhatsAppTemplate = "pedido_cancelado"
)

const (
	// countryCode is prefixed to phone numbers that do not carry it yet.
	countryCode = "591"
	// PickupFallback replaces a missing shipping address in the shipped
	// template (store pickup orders).
	PickupFallback = "Recojo en tienda"
	// NoReasonFallback replaces a missing cancellation reason.
	NoReasonFallback = "Sin especificar"
	// shortIDLength is how many id characters appear in customer messages.
	shortIDLength = 8
)

// emailTemplates maps a resulting lifecycle status to the email template sent
// for it. A status with no entry produces no email; that is a valid outcome,
// not an error.
var emailTemplates = map[orders.OrderStatus]EmailTemplate{
	orders.OrderStatusConfirmed: EmailOrderPaid,
	orders.OrderStatusPaid:      EmailOrderPaid,
	orders.OrderStatusShipped:   EmailOrderShipped,
	orders.OrderStatusCompleted: EmailOrderDelivered,
	orders.OrderStatusCancelled: EmailOrderCancelled,
}

// whatsappTemplates is the WhatsApp counterpart of emailTemplates.
// Note: paid is email-only; it has no WhatsApp entry.
var whatsappTemplates = map[orders.OrderStatus]WhatsAppTemplate{
	orders.OrderStatusConfirmed: WhatsAppPaymentConfirmed,
	orders.OrderStatusShipped:   WhatsAppOrderShipped,
	orders.OrderStatusCompleted: WhatsAppOrderDelivered,
	orders.OrderStatusCancelled: WhatsAppOrderCancelled,
}

// EmailTemplateFor returns the email template for a status, if any.
func EmailTemplateFor(status orders.OrderStatus) (EmailTemplate, bool) {
	template, ok := emailTemplates[status]
	return template, ok
}

// WhatsAppTemplateFor returns the WhatsApp template for a status, if any.
func WhatsAppTemplateFor(status orders.OrderStatus) (WhatsAppTemplate, bool) {
	template, ok := whatsappTemplates[status]
	return template, ok
}

// variableBuilder produces the ordered substitution variables for one
// WhatsApp template.
type variableBuilder func(order orders.Order, reason string) []string

// whatsappVariables maps each template to its variable builder, so every
// template's variable list is declared in one place.
var whatsappVariables = map[WhatsAppTemplate]variableBuilder{
	WhatsAppPaymentConfirmed: func(order orders.Order, _ string) []string {
		return []string{ShortOrderID(order.ID), order.CustomerName}
	},
	WhatsAppOrderDelivered: func(order orders.Order, _ string) []string {
		return []string{ShortOrderID(order.ID), order.CustomerName}
	},
	WhatsAppOrderShipped: func(order orders.Order, _ string) []string {
		address := order.ShippingAddress
		if address == "" {
			address = PickupFallback
		}
		return []string{ShortOrderID(order.ID), order.CustomerName, address}
	},
	WhatsAppOrderCancelled: func(order orders.Order, reason string) []string {
		if reason == "" {
			reason = NoReasonFallback
		}
		return []string{ShortOrderID(order.ID), order.CustomerName, reason}
	},
}

// WhatsAppVariablesFor builds the ordered variable list for a template.
func WhatsAppVariablesFor(template WhatsAppTemplate, order orders.Order, reason string) []string {
	builder, ok := whatsappVariables[template]
	if !ok {
		return nil
	}
	return builder(order, reason)
}

// ShortOrderID returns the customer-facing form of an order id: the first
// eight characters, uppercased. Slicing is rune-aware so non-ASCII ids are
// never cut mid-character.
func ShortOrderID(id string) string {
	runes := []rune(id)
	if len(runes) > shortIDLength {
		runes = runes[:shortIDLength]
	}
	return strings.ToUpper(string(runes))
}

// NormalizePhone strips all non-digit characters and prefixes the country
// code unless the number already starts with it. Returns "" when no digits
// remain.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if normalized == "" {
		return ""
	}

	if !strings.HasPrefix(normalized, countryCode) {
		normalized = countryCode + normalized
	}
	return normalized
}
