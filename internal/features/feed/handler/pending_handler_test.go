package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"order-pulse/internal/features/feed/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCounter always returns a fixed count.
type mockCounter struct {
	count int64
}

// CountPending implements PendingCounter.
func (m *mockCounter) CountPending(ctx context.Context) (int64, error) {
	return m.count, nil
}

// TestPendingHandler_GetPendingCount verifies the snapshot endpoint.
func TestPendingHandler_GetPendingCount(t *testing.T) {
	tracker := service.NewTracker(&mockCounter{count: 12}, nil, 12)
	handler := NewPendingHandler(tracker)

	app := fiber.New()
	app.Get("/orders/pending/count", handler.GetPendingCount)

	req := httptest.NewRequest("GET", "/orders/pending/count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var body PendingCountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(12), body.Count)
}
