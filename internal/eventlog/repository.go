package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Event represents a recorded event
type Event struct {
	EventType string          `json:"event_type"`
	Source    string          `json:"source,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	EventType string // empty matches every type
	Since     time.Time
	Limit     int // <= 0 returns everything
}

// Repository defines the interface for history storage
type Repository interface {
	// LogEvent appends an event
	LogEvent(ctx context.Context, evt Event) error

	// GetEvents returns matching events, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
