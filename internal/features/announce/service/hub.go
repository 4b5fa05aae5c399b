package service

import (
	"sync"
)

const (
	// EventNewOrder is raised when a new pending order arrives.
	EventNewOrder = "new-order-arrived"
	// EventPendingCount carries a fresh pending-order count.
	EventPendingCount = "pending-count"
)

// sessionBuffer is the per-session event buffer size. A session that falls
// further behind starts dropping events; the stream is fire-and-forget.
const sessionBuffer = 16

// Event is an ephemeral, in-memory UI broadcast. It is consumed at most once
// per active session and never persisted.
type Event struct {
	// Name identifies the event type on the stream.
	Name string
	// Data is the JSON-serializable event payload.
	Data any
}

// NewOrderPayload is the minimal summary broadcast for a new pending order.
type NewOrderPayload struct {
	// CustomerName is the name on the new order.
	CustomerName string `json:"customerName"`
	// Total is the order total.
	Total float64 `json:"total"`
}

// PendingCountPayload carries the republished pending-order count.
type PendingCountPayload struct {
	// Count is the current number of pending orders.
	Count int64 `json:"count"`
}

// Hub fans UI events out to every connected staff session. It is
// process-local; sessions subscribe on stream connect and unsubscribe on
// disconnect.
type Hub struct {
	mu sync.Mutex
	// nextID is the next session subscription id.
	nextID int
	// sessions maps subscription id to the session's event channel.
	sessions map[int]chan Event
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int]chan Event),
	}
}

// Subscribe registers a new session and returns its id and event channel.
func (h *Hub) Subscribe() (int, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Event, sessionBuffer)
	h.sessions[id] = ch

	return id, ch
}

// Unsubscribe removes a session and closes its channel.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.sessions[id]; ok {
		delete(h.sessions, id)
		close(ch)
	}
}

// Broadcast delivers an event to every session without blocking. Sessions
// with a full buffer miss the event.
func (h *Hub) Broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.sessions {
		select {
		case ch <- event:
		default:
		}
	}
}

// SessionCount returns the number of connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// PublishPendingCount implements the feed CountPublisher port.
func (h *Hub) PublishPendingCount(count int64) {
	h.Broadcast(Event{
		Name: EventPendingCount,
		Data: PendingCountPayload{Count: count},
	})
}
