package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventUserElevated     EventType = "user_elevated"
	EventWorkoutCreated   EventType = "workout_created"
	EventWorkoutCompleted EventType = "workout_completed"
	EventWorkoutDeleted   EventType = "workout_deleted"
)

// AllEventTypes lists every event the service emits, in declaration order.
var AllEventTypes = []EventType{
	EventUserRegistered,
	EventUserElevated,
	EventWorkoutCreated,
	EventWorkoutCompleted,
	EventWorkoutDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// WorkoutPayload carries workout identity for workout events.
type WorkoutPayload struct {
	WorkoutID string `json:"workout_id"`
	Name      string `json:"name"`
}

// UserPayload carries account identity for user events.
type UserPayload struct {
	Email string `json:"email"`
}
