package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/events"
	"github.com/spec-kit/workout-service/internal/repository"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// WorkoutService coordinates workout CRUD, status and search flows.
type WorkoutService struct {
	workouts   repository.WorkoutRepository
	dispatcher events.Dispatcher
}

// NewWorkoutService builds the service.
func NewWorkoutService(workouts repository.WorkoutRepository, dispatcher events.Dispatcher) *WorkoutService {
	return &WorkoutService{workouts: workouts, dispatcher: dispatcher}
}

// WorkoutInput describes create/update payloads.
type WorkoutInput struct {
	Name            string
	DurationMinutes int
	Price           float64
	Status          domain.WorkoutStatus
}

// Add creates a workout owned by userID. Workout names are unique
// across the catalog; a duplicate is a conflict.
func (s *WorkoutService) Add(ctx context.Context, userID string, in WorkoutInput) (*domain.Workout, error) {
	if in.Name == "" {
		return nil, apperrors.NewValidationError("Workout name is required", nil)
	}
	if in.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("Duration is required", nil)
	}

	if _, err := s.workouts.GetByName(ctx, in.Name); err == nil {
		return nil, apperrors.NewConflict("Workout already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	status := in.Status
	if status == "" {
		status = domain.WorkoutStatusPending
	}

	workout := &domain.Workout{
		UserID:          userID,
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Status:          status,
		IsActive:        true,
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventWorkoutCreated, userID, workout)
	return workout, nil
}

// ListMine returns the caller's workouts.
func (s *WorkoutService) ListMine(ctx context.Context, userID string) ([]domain.Workout, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(workouts) == 0 {
		return nil, apperrors.NewNotFound("No workouts found")
	}
	return workouts, nil
}

// Update replaces the mutable fields of a workout.
func (s *WorkoutService) Update(ctx context.Context, id string, in WorkoutInput) (*domain.Workout, error) {
	workout, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	workout.Name = in.Name
	workout.DurationMinutes = in.DurationMinutes
	workout.Price = in.Price
	if in.Status != "" {
		workout.Status = in.Status
	}
	if err := s.workouts.Update(ctx, workout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Workout not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return workout, nil
}

// Delete removes a workout; deleting an already removed workout is a
// not-found.
func (s *WorkoutService) Delete(ctx context.Context, userID, id string) error {
	workout, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.workouts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Workout not found")
		}
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventWorkoutDeleted, userID, workout)
	return nil
}

// CompleteStatus marks a workout as completed.
func (s *WorkoutService) CompleteStatus(ctx context.Context, userID, id string) (*domain.Workout, error) {
	workout, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	workout.Status = domain.WorkoutStatusCompleted
	if err := s.workouts.Update(ctx, workout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Workout not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventWorkoutCompleted, userID, workout)
	return workout, nil
}

// ListActive returns workouts still flagged active.
func (s *WorkoutService) ListActive(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.workouts.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(workouts) == 0 {
		return nil, apperrors.NewNotFound("No active workouts found")
	}
	return workouts, nil
}

// Get returns a single workout by id.
func (s *WorkoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	return s.getByID(ctx, id)
}

// SearchByName performs a case-insensitive substring search. An empty
// result is an empty slice, not an error.
func (s *WorkoutService) SearchByName(ctx context.Context, name string) ([]domain.Workout, error) {
	workouts, err := s.workouts.SearchByName(ctx, name)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// SearchByPrice returns workouts priced within the inclusive range.
func (s *WorkoutService) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]domain.Workout, error) {
	workouts, err := s.workouts.SearchByPrice(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

func (s *WorkoutService) getByID(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Workout not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return workout, nil
}

func (s *WorkoutService) publish(ctx context.Context, eventType events.EventType, userID string, workout *domain.Workout) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   events.WorkoutPayload{WorkoutID: workout.ID, Name: workout.Name},
	})
}
