package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/workout-service/internal/domain"
)

const workoutColumns = `id, user_id, name, duration_minutes, price, status, is_active, date_added, updated_at`

// WorkoutRepository encapsulates workout persistence.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	GetByName(ctx context.Context, name string) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error)
	ListActive(ctx context.Context) ([]domain.Workout, error)
	SearchByName(ctx context.Context, name string) ([]domain.Workout, error)
	SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]domain.Workout, error)
}

type workoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository instantiates repository.
func NewWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &workoutRepository{pool: pool}
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	const query = `
        INSERT INTO workouts (user_id, name, duration_minutes, price, status, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, date_added, updated_at`
	return r.pool.QueryRow(ctx, query,
		workout.UserID,
		workout.Name,
		workout.DurationMinutes,
		workout.Price,
		workout.Status,
		workout.IsActive,
	).Scan(&workout.ID, &workout.DateAdded, &workout.UpdatedAt)
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	const query = `
        UPDATE workouts SET name=$1, duration_minutes=$2, price=$3, status=$4, is_active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		workout.Name,
		workout.DurationMinutes,
		workout.Price,
		workout.Status,
		workout.IsActive,
		workout.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	return r.fetchSingle(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id=$1`, id)
}

func (r *workoutRepository) GetByName(ctx context.Context, name string) (*domain.Workout, error) {
	return r.fetchSingle(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE name=$1`, name)
}

func (r *workoutRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Workout, error) {
	var workout domain.Workout
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Name,
		&workout.DurationMinutes,
		&workout.Price,
		&workout.Status,
		&workout.IsActive,
		&workout.DateAdded,
		&workout.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id=$1 ORDER BY date_added DESC`
	return r.fetchMany(ctx, query, userID)
}

func (r *workoutRepository) ListActive(ctx context.Context) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE is_active=TRUE ORDER BY date_added DESC`
	return r.fetchMany(ctx, query)
}

func (r *workoutRepository) SearchByName(ctx context.Context, name string) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE name ILIKE '%' || $1 || '%' ORDER BY date_added DESC`
	return r.fetchMany(ctx, query, name)
}

func (r *workoutRepository) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE price >= $1 AND price <= $2 ORDER BY price ASC`
	return r.fetchMany(ctx, query, minPrice, maxPrice)
}

func (r *workoutRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Workout, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]domain.Workout, error) {
	var result []domain.Workout
	for rows.Next() {
		var workout domain.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Name,
			&workout.DurationMinutes,
			&workout.Price,
			&workout.Status,
			&workout.IsActive,
			&workout.DateAdded,
			&workout.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, workout)
	}
	return result, rows.Err()
}
