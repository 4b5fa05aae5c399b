package domain

import (
	orders "order-pulse/internal/features/orders/domain"
)

// EmailPayload is the request body of the send-email endpoint.
type EmailPayload struct {
	// Type is the email template identifier.
	Type EmailTemplate `json:"type"`
	// OrderData carries the order snapshot the template renders.
	OrderData EmailOrderData `json:"orderData"`
}

// EmailOrderData is the order snapshot embedded in an email payload.
type EmailOrderData struct {
	// OrderID is the full order identifier.
	OrderID string `json:"orderId"`
	// CustomerName is the customer's display name.
	CustomerName string `json:"customerName"`
	// CustomerEmail is the destination address.
	CustomerEmail string `json:"customerEmail"`
	// Items contains the ordered line items.
	Items []orders.OrderItem `json:"items"`
	// Subtotal is the sum of line item prices before shipping.
	Subtotal float64 `json:"subtotal"`
	// ShippingCost is the delivery charge.
	ShippingCost float64 `json:"shippingCost"`
	// ShippingDistance is the delivery distance in kilometers, if known.
	ShippingDistance *float64 `json:"shippingDistance,omitempty"`
	// DeliveryAddress is the shipping address.
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	// LocationURL is a map link to the delivery location.
	LocationURL string `json:"locationUrl,omitempty"`
	// DiscountAmount is not encoded for status emails; always zero.
	DiscountAmount float64 `json:"discountAmount"`
	// DiscountCode is not encoded for status emails; always empty.
	DiscountCode string `json:"discountCode"`
	// Total is the final amount charged.
	Total float64 `json:"total"`
}

// WhatsAppMessage is the request body of the send-whatsapp endpoint.
type WhatsAppMessage struct {
	// To is the normalized destination phone number.
	To string `json:"to"`
	// TemplateName is the WhatsApp template identifier.
	TemplateName WhatsAppTemplate `json:"templateName"`
	// Variables is the ordered substitution variable list.
	Variables []string `json:"variables"`
}

// BuildEmailPayload assembles the email payload for an order and template.
func BuildEmailPayload(order orders.Order, template EmailTemplate) EmailPayload {
	return EmailPayload{
		Type: template,
		OrderData: EmailOrderData{
			OrderID:          order.ID,
			CustomerName:     order.CustomerName,
			CustomerEmail:    order.CustomerEmail,
			Items:            order.Items,
			Subtotal:         order.Subtotal,
			ShippingCost:     order.ShippingCost,
			ShippingDistance: order.DistanceKm,
			DeliveryAddress:  order.ShippingAddress,
			LocationURL:      order.LocationURL,
			DiscountAmount:   0,
			DiscountCode:     "",
			Total:            order.Total,
		},
	}
}

// BuildWhatsAppMessage assembles the WhatsApp message for an order and
// template. The reason is only used by the cancellation template.
func BuildWhatsAppMessage(order orders.Order, template WhatsAppTemplate, reason string) WhatsAppMessage {
	return WhatsAppMessage{
		To:           NormalizePhone(order.CustomerPhone),
		TemplateName: template,
		Variables:    WhatsAppVariablesFor(template, order, reason),
	}
}
