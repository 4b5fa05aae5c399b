package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"order-pulse/internal/core/httpclient"
	"order-pulse/internal/features/notify/domain"
)

// WhatsAppSenderAdapter implements the WhatsAppSender interface against the
// admin panel's send-whatsapp API route. One call, one POST, no retry.
type WhatsAppSenderAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the admin panel base URL.
	baseURL string
}

// NewWhatsAppSenderAdapter creates a new instance of WhatsAppSenderAdapter.
func NewWhatsAppSenderAdapter(baseURL string) *WhatsAppSenderAdapter {
	return &WhatsAppSenderAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: baseURL,
	}
}

// Send posts the message to the send-whatsapp endpoint.
func (a *WhatsAppSenderAdapter) Send(ctx context.Context, message domain.WhatsAppMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp message: %w", err)
	}

	url := a.baseURL + "/api/send-whatsapp"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send-whatsapp returned status: %d", resp.StatusCode)
	}

	return nil
}
