package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"order-pulse/internal/core/logger"
	"order-pulse/internal/features/announce/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// heartbeatInterval is how often a comment line is written to keep
// intermediaries from closing an idle stream.
const heartbeatInterval = 25 * time.Second

// StreamHandler serves the server-sent events stream consumed by staff UI
// sessions.
type StreamHandler struct {
	// hub is the session broadcast hub.
	hub *service.Hub
}

// NewStreamHandler creates a new instance of StreamHandler.
func NewStreamHandler(hub *service.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
	}
}

// Stream subscribes the connection to the hub and writes events until the
// client disconnects.
// @Summary Live UI event stream
// @Description Server-sent events carrying new-order-arrived and pending-count updates for the current session.
// @Produce text/event-stream
// @Success 200
// @Router /events/stream [get]
func (h *StreamHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	id, events := h.hub.Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(id)

		logger.Get().Debug("UI session connected", zap.Int("session_id", id))

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				if err := writeEvent(w, event); err != nil {
					logger.Get().Debug("UI session disconnected",
						zap.Int("session_id", id),
						zap.Error(err),
					)
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

// writeEvent writes one SSE frame and flushes it to the client.
func writeEvent(w *bufio.Writer, event service.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
		return err
	}
	return w.Flush()
}
