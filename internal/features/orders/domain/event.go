package domain

// EventKind identifies the kind of row change carried by a feed event.
type EventKind string

const (
	// EventInsert indicates a new order row was created.
	EventInsert EventKind = "insert"
	// EventUpdate indicates an existing order row was modified.
	EventUpdate EventKind = "update"
	// EventDelete indicates an order row was removed.
	EventDelete EventKind = "delete"
)

// ChangeEvent is a single row-level change published by the storage layer on
// the orders change feed.
type ChangeEvent struct {
	// Kind is the kind of change (insert, update, delete).
	Kind EventKind `json:"kind"`
	// New is the row state after the change; nil for deletes.
	New *Order `json:"new,omitempty"`
	// Old is the row state before the change; nil for inserts.
	Old *Order `json:"old,omitempty"`
}
