package handler

import (
	"net/http"

	"order-pulse/internal/features/feed/service"

	"github.com/gofiber/fiber/v2"
)

// PendingHandler exposes the current pending-order count to the staff UI.
type PendingHandler struct {
	// tracker holds the live pending count.
	tracker *service.Tracker
}

// NewPendingHandler creates a new instance of PendingHandler.
func NewPendingHandler(tracker *service.Tracker) *PendingHandler {
	return &PendingHandler{
		tracker: tracker,
	}
}

// PendingCountResponse is the snapshot returned to the UI at session start.
type PendingCountResponse struct {
	// Count is the number of orders currently awaiting action.
	Count int64 `json:"count"`
}

// GetPendingCount returns the current pending-order count.
// @Summary Current pending-order count
// @Description Snapshot of the number of orders awaiting action; the UI uses it to seed its counter at session start.
// @Produce json
// @Success 200 {object} PendingCountResponse
// @Router /orders/pending/count [get]
func (h *PendingHandler) GetPendingCount(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(PendingCountResponse{
		Count: h.tracker.Current(),
	})
}
