package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-pulse/internal/features/notify/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmailSenderAdapter_Send verifies the request path and body.
func TestEmailSenderAdapter_Send(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	sender := NewEmailSenderAdapter(ts.URL)
	payload := domain.EmailPayload{
		Type: domain.EmailOrderPaid,
		OrderData: domain.EmailOrderData{
			OrderID:       "ord-1",
			CustomerName:  "Lucia Paz",
			CustomerEmail: "a@b.com",
			Total:         120,
		},
	}

	err := sender.Send(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "/api/send-email", gotPath)
	assert.Equal(t, "order_paid", gotBody["type"])

	orderData, ok := gotBody["orderData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ord-1", orderData["orderId"])
	assert.Equal(t, "a@b.com", orderData["customerEmail"])
	assert.Equal(t, float64(0), orderData["discountAmount"])
}

// TestEmailSenderAdapter_Send_Rejection verifies non-2xx responses become errors.
func TestEmailSenderAdapter_Send_Rejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	sender := NewEmailSenderAdapter(ts.URL)

	err := sender.Send(context.Background(), domain.EmailPayload{Type: domain.EmailOrderPaid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 502")
}

// TestWhatsAppSenderAdapter_Send verifies the request path and body.
func TestWhatsAppSenderAdapter_Send(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	sender := NewWhatsAppSenderAdapter(ts.URL)
	message := domain.WhatsAppMessage{
		To:           "59170000000",
		TemplateName: domain.WhatsAppOrderShipped,
		Variables:    []string{"A1B2C3D4", "Lucia Paz", "Recojo en tienda"},
	}

	err := sender.Send(context.Background(), message)
	require.NoError(t, err)

	assert.Equal(t, "/api/send-whatsapp", gotPath)
	assert.Equal(t, "59170000000", gotBody["to"])
	assert.Equal(t, "pedido_en_camino", gotBody["templateName"])
	assert.Equal(t, []any{"A1B2C3D4", "Lucia Paz", "Recojo en tienda"}, gotBody["variables"])
}

// TestWhatsAppSenderAdapter_Send_TransportError verifies unreachable endpoints
// become errors.
func TestWhatsAppSenderAdapter_Send_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	sender := NewWhatsAppSenderAdapter(ts.URL)

	err := sender.Send(context.Background(), domain.WhatsAppMessage{To: "59170000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}
