package domain

import (
	"testing"

	orders "order-pulse/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizePhone covers local, prefixed and formatted numbers.
func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local number gets prefix", "70123456", "59170123456"},
		{"already prefixed unchanged", "59170123456", "59170123456"},
		{"formatting stripped before prefix check", "+591 7012-3456", "59170123456"},
		{"spaces and dashes", "7000-00 00", "59170000000"},
		{"no digits", "  +-() ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

// TestShortOrderID verifies the customer-facing order id form.
func TestShortOrderID(t *testing.T) {
	assert.Equal(t, "A1B2C3D4", ShortOrderID("a1b2c3d4-e5f6-7890"))
	assert.Equal(t, "ABC", ShortOrderID("abc"))
	// Multi-byte ids are cut on rune boundaries.
	assert.Equal(t, "ÑANDÚ-12", ShortOrderID("ñandú-123456"))
}

// TestEmailTemplateFor verifies the status to email template mapping.
func TestEmailTemplateFor(t *testing.T) {
	template, ok := EmailTemplateFor(orders.OrderStatusConfirmed)
	require.True(t, ok)
	assert.Equal(t, EmailOrderPaid, template)

	// paid is email-only, but it does map on this channel.
	_, ok = EmailTemplateFor(orders.OrderStatusPaid)
	assert.True(t, ok)

	// pending has no notification on any channel.
	_, ok = EmailTemplateFor(orders.OrderStatusPending)
	assert.False(t, ok)
}

// TestWhatsAppTemplateFor verifies the status to WhatsApp template mapping.
func TestWhatsAppTemplateFor(t *testing.T) {
	tests := []struct {
		status orders.OrderStatus
		want   WhatsAppTemplate
	}{
		{orders.OrderStatusConfirmed, WhatsAppPaymentConfirmed},
		{orders.OrderStatusShipped, WhatsAppOrderShipped},
		{orders.OrderStatusCompleted, WhatsAppOrderDelivered},
		{orders.OrderStatusCancelled, WhatsAppOrderCancelled},
	}

	for _, tt := range tests {
		template, ok := WhatsAppTemplateFor(tt.status)
		require.True(t, ok)
		assert.Equal(t, tt.want, template)
	}

	// paid is email-only.
	_, ok := WhatsAppTemplateFor(orders.OrderStatusPaid)
	assert.False(t, ok)

	_, ok = WhatsAppTemplateFor(orders.OrderStatusPending)
	assert.False(t, ok)
}

// TestWhatsAppVariablesFor verifies each template's variable list.
func TestWhatsAppVariablesFor(t *testing.T) {
	order := orders.Order{
		ID:              "a1b2c3d4-e5f6",
		CustomerName:    "Lucia Paz",
		ShippingAddress: "Av. Ballivian 123",
	}

	t.Run("payment confirmed", func(t *testing.T) {
		vars := WhatsAppVariablesFor(WhatsAppPaymentConfirmed, order, "")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz"}, vars)
	})

	t.Run("delivered", func(t *testing.T) {
		vars := WhatsAppVariablesFor(WhatsAppOrderDelivered, order, "")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz"}, vars)
	})

	t.Run("shipped with address", func(t *testing.T) {
		vars := WhatsAppVariablesFor(WhatsAppOrderShipped, order, "")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz", "Av. Ballivian 123"}, vars)
	})

	t.Run("shipped without address falls back to pickup", func(t *testing.T) {
		pickup := order
		pickup.ShippingAddress = ""
		vars := WhatsAppVariablesFor(WhatsAppOrderShipped, pickup, "")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz", "Recojo en tienda"}, vars)
	})

	t.Run("cancelled with reason", func(t *testing.T) {
		vars := WhatsAppVariablesFor(WhatsAppOrderCancelled, order, "Producto sin stock...")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz", "Producto sin stock..."}, vars)
	})

	t.Run("cancelled without reason falls back", func(t *testing.T) {
		vars := WhatsAppVariablesFor(WhatsAppOrderCancelled, order, "")
		assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz", "Sin especificar"}, vars)
	})
}

// TestBuildEmailPayload verifies the email payload snapshot.
func TestBuildEmailPayload(t *testing.T) {
	distance := 4.2
	order := orders.Order{
		ID:              "ord-77",
		CustomerName:    "Jorge Quispe",
		CustomerEmail:   "jorge@example.com",
		ShippingAddress: "Calle Sucre 45",
		LocationURL:     "https://maps.example.com/x",
		ShippingCost:    15,
		DistanceKm:      &distance,
		Subtotal:        200,
		Total:           215,
		Items: []orders.OrderItem{
			{Name: "Polera", Quantity: 2, UnitPrice: 100, Size: "M", Color: "negro"},
		},
	}

	payload := BuildEmailPayload(order, EmailOrderPaid)

	assert.Equal(t, EmailOrderPaid, payload.Type)
	assert.Equal(t, "ord-77", payload.OrderData.OrderID)
	assert.Equal(t, "jorge@example.com", payload.OrderData.CustomerEmail)
	assert.Equal(t, order.Items, payload.OrderData.Items)
	assert.Equal(t, float64(200), payload.OrderData.Subtotal)
	assert.Equal(t, float64(15), payload.OrderData.ShippingCost)
	require.NotNil(t, payload.OrderData.ShippingDistance)
	assert.Equal(t, 4.2, *payload.OrderData.ShippingDistance)
	assert.Equal(t, "Calle Sucre 45", payload.OrderData.DeliveryAddress)
	assert.Equal(t, "https://maps.example.com/x", payload.OrderData.LocationURL)
	// Status emails carry a fixed zero-discount placeholder.
	assert.Equal(t, float64(0), payload.OrderData.DiscountAmount)
	assert.Equal(t, "", payload.OrderData.DiscountCode)
	assert.Equal(t, float64(215), payload.OrderData.Total)
}

// TestBuildWhatsAppMessage verifies phone normalization and variables together.
func TestBuildWhatsAppMessage(t *testing.T) {
	order := orders.Order{
		ID:            "a1b2c3d4-e5f6",
		CustomerName:  "Lucia Paz",
		CustomerPhone: "+591 7012-3456",
	}

	message := BuildWhatsAppMessage(order, WhatsAppPaymentConfirmed, "")

	assert.Equal(t, "59170123456", message.To)
	assert.Equal(t, WhatsAppPaymentConfirmed, message.TemplateName)
	assert.Equal(t, []string{"A1B2C3D4", "Lucia Paz"}, message.Variables)
}
