package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCoworkerCreated EventType = "coworker_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	CoworkerID string      `json:"coworker_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// CoworkerCreatedPayload payload.
type CoworkerCreatedPayload struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}
