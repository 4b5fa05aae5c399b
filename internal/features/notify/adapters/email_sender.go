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

// EmailSenderAdapter implements the EmailSender interface against the admin
// panel's send-email API route. One call, one POST, no retry.
type EmailSenderAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the admin panel base URL.
	baseURL string
}

// NewEmailSenderAdapter creates a new instance of EmailSenderAdapter.
func NewEmailSenderAdapter(baseURL string) *EmailSenderAdapter {
	return &EmailSenderAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: baseURL,
	}
}

// Send posts the payload to the send-email endpoint.
func (a *EmailSenderAdapter) Send(ctx context.Context, payload domain.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	url := a.baseURL + "/api/send-email"
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
		return fmt.Errorf("send-email returned status: %d", resp.StatusCode)
	}

	return nil
}
