package handler

import (
	"net/http"

	"order-pulse/internal/features/notify/service"
	orders "order-pulse/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
)

// NotifyHandler receives notification triggers from the CRUD layer that just
// changed an order's status.
type NotifyHandler struct {
	// dispatcher executes the channel fan-out.
	dispatcher *service.Dispatcher
}

// NewNotifyHandler creates a new instance of NotifyHandler.
func NewNotifyHandler(d *service.Dispatcher) *NotifyHandler {
	return &NotifyHandler{
		dispatcher: d,
	}
}

// NotifyRequest is the body of a notification trigger.
type NotifyRequest struct {
	// Status is the order's new lifecycle status.
	Status orders.OrderStatus `json:"status"`
	// CancellationReason is the optional human-entered reason; it is only
	// forwarded to the WhatsApp cancellation template.
	CancellationReason string `json:"cancellation_reason,omitempty"`
	// Order is the snapshot of the order at transition time.
	Order *orders.Order `json:"order"`
}

// Notify accepts a status transition and dispatches notifications.
// @Summary Dispatch status notifications for an order
// @Description Fire-and-forget: the call is accepted immediately and delivery outcomes are never surfaced to the caller.
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body NotifyRequest true "Transition details"
// @Success 202
// @Failure 400 {object} ErrorResponse
// @Router /orders/{id}/notify [post]
func (h *NotifyHandler) Notify(c *fiber.Ctx) error {
	orderID := c.Params("id")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var req NotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	if req.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Status is required",
			RayID:   rayID,
		})
	}

	if req.Order == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order snapshot is required",
			RayID:   rayID,
		})
	}

	order := *req.Order
	if order.ID == "" {
		order.ID = orderID
	}

	h.dispatcher.Notify(order, req.Status, req.CancellationReason)

	return c.SendStatus(http.StatusAccepted)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
