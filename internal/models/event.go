package models

// Event types published to Kafka.
const (
	EventFootprintRecorded  = "footprint_recorded"
	EventChallengeCompleted = "challenge_completed"
)

// Event represents a domain event published to Kafka after a state change.
type Event struct {
	EventID     string  `json:"event_id"`               // Unique identifier for the event
	Type        string  `json:"type"`                   // One of the Event* constants
	Timestamp   int64   `json:"timestamp"`              // Unix timestamp (seconds) when the event occurred
	UserID      int64   `json:"user_id"`                // User the event belongs to
	RecordID    int64   `json:"record_id,omitempty"`    // Footprint record id, for footprint_recorded
	Total       float64 `json:"total,omitempty"`        // Computed footprint total, for footprint_recorded
	ChallengeID int64   `json:"challenge_id,omitempty"` // Challenge id, for challenge_completed
	Points      int64   `json:"points,omitempty"`       // Points awarded, for challenge_completed
}
