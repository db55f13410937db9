package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/events"
)

func TestAddWorkout(t *testing.T) {
	t.Run("creates pending workout", func(t *testing.T) {
		repo := &MockWorkoutRepo{}
		svc := NewWorkoutService(repo, nil)

		workout, err := svc.Add(context.Background(), "user-1", WorkoutInput{
			Name:            "Morning Run",
			DurationMinutes: 30,
			Price:           9.99,
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", workout.UserID)
		assert.Equal(t, domain.WorkoutStatusPending, workout.Status)
		assert.True(t, workout.IsActive)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := &MockWorkoutRepo{
			GetByNameFunc: func(_ context.Context, name string) (*domain.Workout, error) {
				return &domain.Workout{ID: "workout-1", Name: name}, nil
			},
		}
		svc := NewWorkoutService(repo, nil)

		_, err := svc.Add(context.Background(), "user-1", WorkoutInput{Name: "Morning Run", DurationMinutes: 30})
		assertStatus(t, err, http.StatusConflict)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		svc := NewWorkoutService(&MockWorkoutRepo{}, nil)

		_, err := svc.Add(context.Background(), "user-1", WorkoutInput{DurationMinutes: 30})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("publishes created event", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		var seen []events.Event
		dispatcher.Subscribe(events.EventWorkoutCreated, func(_ context.Context, e events.Event) error {
			seen = append(seen, e)
			return nil
		})
		svc := NewWorkoutService(&MockWorkoutRepo{}, dispatcher)

		_, err := svc.Add(context.Background(), "user-1", WorkoutInput{Name: "Morning Run", DurationMinutes: 30})
		require.NoError(t, err)
		require.Len(t, seen, 1)
		assert.Equal(t, "user-1", seen[0].UserID)
	})
}

func TestListMine(t *testing.T) {
	t.Run("empty list not found", func(t *testing.T) {
		svc := NewWorkoutService(&MockWorkoutRepo{}, nil)

		_, err := svc.ListMine(context.Background(), "user-1")
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("returns caller's workouts", func(t *testing.T) {
		repo := &MockWorkoutRepo{
			ListByUserFunc: func(_ context.Context, userID string) ([]domain.Workout, error) {
				return []domain.Workout{{ID: "workout-1", UserID: userID}}, nil
			},
		}
		svc := NewWorkoutService(repo, nil)

		workouts, err := svc.ListMine(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, workouts, 1)
		assert.Equal(t, "user-1", workouts[0].UserID)
	})
}

func TestDeleteWorkout(t *testing.T) {
	t.Run("second delete is not found", func(t *testing.T) {
		existing := map[string]*domain.Workout{
			"workout-1": {ID: "workout-1", UserID: "user-1", Name: "Morning Run"},
		}
		repo := &MockWorkoutRepo{
			GetByIDFunc: func(_ context.Context, id string) (*domain.Workout, error) {
				if w, ok := existing[id]; ok {
					return w, nil
				}
				return nil, pgx.ErrNoRows
			},
			DeleteFunc: func(_ context.Context, id string) error {
				if _, ok := existing[id]; !ok {
					return pgx.ErrNoRows
				}
				delete(existing, id)
				return nil
			},
		}
		svc := NewWorkoutService(repo, nil)

		require.NoError(t, svc.Delete(context.Background(), "user-1", "workout-1"))

		err := svc.Delete(context.Background(), "user-1", "workout-1")
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestCompleteStatus(t *testing.T) {
	t.Run("marks completed", func(t *testing.T) {
		repo := &MockWorkoutRepo{
			GetByIDFunc: func(_ context.Context, id string) (*domain.Workout, error) {
				return &domain.Workout{ID: id, Status: domain.WorkoutStatusPending}, nil
			},
		}
		svc := NewWorkoutService(repo, nil)

		workout, err := svc.CompleteStatus(context.Background(), "user-1", "workout-1")
		require.NoError(t, err)
		assert.Equal(t, domain.WorkoutStatusCompleted, workout.Status)
	})

	t.Run("missing workout not found", func(t *testing.T) {
		svc := NewWorkoutService(&MockWorkoutRepo{}, nil)

		_, err := svc.CompleteStatus(context.Background(), "user-1", "workout-404")
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestListActive(t *testing.T) {
	t.Run("none active not found", func(t *testing.T) {
		svc := NewWorkoutService(&MockWorkoutRepo{}, nil)

		_, err := svc.ListActive(context.Background())
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestSearch(t *testing.T) {
	t.Run("search by name returns empty slice", func(t *testing.T) {
		svc := NewWorkoutService(&MockWorkoutRepo{}, nil)

		workouts, err := svc.SearchByName(context.Background(), "run")
		require.NoError(t, err)
		assert.NotNil(t, workouts)
		assert.Empty(t, workouts)
	})

	t.Run("search by price forwards range", func(t *testing.T) {
		var gotMin, gotMax float64
		repo := &MockWorkoutRepo{
			SearchByPriceFunc: func(_ context.Context, minPrice, maxPrice float64) ([]domain.Workout, error) {
				gotMin, gotMax = minPrice, maxPrice
				return []domain.Workout{{ID: "workout-1", Price: 15}}, nil
			},
		}
		svc := NewWorkoutService(repo, nil)

		workouts, err := svc.SearchByPrice(context.Background(), 10, 20)
		require.NoError(t, err)
		assert.Equal(t, 10.0, gotMin)
		assert.Equal(t, 20.0, gotMax)
		require.Len(t, workouts, 1)
	})
}
