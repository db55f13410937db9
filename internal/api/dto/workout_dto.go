package dto

import (
	"time"

	"github.com/spec-kit/workout-service/internal/domain"
)

// WorkoutRequest payload for create/update.
type WorkoutRequest struct {
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// SearchByNameRequest payload.
type SearchByNameRequest struct {
	WorkoutName *string `json:"workoutName"`
}

// SearchByPriceRequest payload. Pointers distinguish missing fields
// from zero values.
type SearchByPriceRequest struct {
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// WorkoutResponse is the serialized workout shape.
type WorkoutResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"isActive"`
	DateAdded time.Time `json:"dateAdded"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWorkoutResponse maps a domain workout.
func NewWorkoutResponse(workout *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        workout.ID,
		UserID:    workout.UserID,
		Name:      workout.Name,
		Duration:  workout.DurationMinutes,
		Price:     workout.Price,
		Status:    string(workout.Status),
		IsActive:  workout.IsActive,
		DateAdded: workout.DateAdded,
		UpdatedAt: workout.UpdatedAt,
	}
}

// NewWorkoutResponses maps a slice of domain workouts.
func NewWorkoutResponses(workouts []domain.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, NewWorkoutResponse(&workouts[i]))
	}
	return out
}
