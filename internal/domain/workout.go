package domain

import "time"

// WorkoutStatus enumerates lifecycle states for workouts.
type WorkoutStatus string

const (
	WorkoutStatusPending   WorkoutStatus = "pending"
	WorkoutStatusCompleted WorkoutStatus = "completed"
)

// Workout is the aggregate for tracked workout entries.
type Workout struct {
	ID              string
	UserID          string
	Name            string
	DurationMinutes int
	Price           float64
	Status          WorkoutStatus
	IsActive        bool
	DateAdded       time.Time
	UpdatedAt       time.Time
}
