package domain

// OrderStatus represents the current lifecycle stage of an order.
// Transitions are driven by the admin panel's CRUD layer; this service only
// reacts to the resulting status and tolerates values outside this set.
type OrderStatus string

const (
	// OrderStatusPending indicates the order is awaiting staff action.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates payment has been confirmed by staff.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPaid indicates payment has been registered.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped indicates the order is out for delivery.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusCompleted indicates the order has been delivered.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled indicates the order has been cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a read-only snapshot of an order row as published by the storage
// layer. It is never persisted by this service.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id"`
	// CustomerName is the customer's display name.
	CustomerName string `json:"customer_name"`
	// CustomerEmail is the customer's contact email (optional).
	CustomerEmail string `json:"customer_email,omitempty"`
	// CustomerPhone is the customer's contact phone number (optional).
	CustomerPhone string `json:"customer_phone,omitempty"`
	// NotifyEmail indicates the customer opted in to email notifications.
	NotifyEmail bool `json:"notify_email"`
	// NotifyWhatsApp indicates the customer opted in to WhatsApp notifications.
	NotifyWhatsApp bool `json:"notify_whatsapp"`
	// Status is the current lifecycle status of the order.
	Status OrderStatus `json:"status"`
	// DeliveryMethod is the fulfilment method (e.g., delivery, pickup).
	DeliveryMethod string `json:"delivery_method,omitempty"`
	// ShippingAddress is the delivery address; empty means store pickup.
	ShippingAddress string `json:"shipping_address,omitempty"`
	// LocationURL is a map link to the delivery location.
	LocationURL string `json:"location_url,omitempty"`
	// ShippingCost is the delivery charge.
	ShippingCost float64 `json:"shipping_cost"`
	// DistanceKm is the delivery distance in kilometers (optional).
	DistanceKm *float64 `json:"distance_km,omitempty"`
	// Subtotal is the sum of line item prices before shipping.
	Subtotal float64 `json:"subtotal"`
	// Total is the final amount charged to the customer.
	Total float64 `json:"total"`
	// Items contains the ordered line items.
	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem represents an individual line item within an order.
type OrderItem struct {
	// Name is the product name.
	Name string `json:"name"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// UnitPrice is the price per unit.
	UnitPrice float64 `json:"price"`
	// Size is the selected product size (optional).
	Size string `json:"size,omitempty"`
	// Color is the selected product color (optional).
	Color string `json:"color,omitempty"`
}
