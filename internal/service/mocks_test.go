package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workout-service/internal/domain"
)

type MockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = "user-1"
	return nil
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

type MockWorkoutRepo struct {
	CreateFunc        func(ctx context.Context, workout *domain.Workout) error
	UpdateFunc        func(ctx context.Context, workout *domain.Workout) error
	DeleteFunc        func(ctx context.Context, id string) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Workout, error)
	GetByNameFunc     func(ctx context.Context, name string) (*domain.Workout, error)
	ListByUserFunc    func(ctx context.Context, userID string) ([]domain.Workout, error)
	ListActiveFunc    func(ctx context.Context) ([]domain.Workout, error)
	SearchByNameFunc  func(ctx context.Context, name string) ([]domain.Workout, error)
	SearchByPriceFunc func(ctx context.Context, minPrice, maxPrice float64) ([]domain.Workout, error)
}

func (m *MockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workout)
	}
	workout.ID = "workout-1"
	return nil
}

func (m *MockWorkoutRepo) Update(ctx context.Context, workout *domain.Workout) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, workout)
	}
	return nil
}

func (m *MockWorkoutRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *MockWorkoutRepo) GetByName(ctx context.Context, name string) (*domain.Workout, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, pgx.ErrNoRows
}

func (m *MockWorkoutRepo) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWorkoutRepo) ListActive(ctx context.Context) ([]domain.Workout, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockWorkoutRepo) SearchByName(ctx context.Context, name string) ([]domain.Workout, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockWorkoutRepo) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]domain.Workout, error) {
	if m.SearchByPriceFunc != nil {
		return m.SearchByPriceFunc(ctx, minPrice, maxPrice)
	}
	return nil, nil
}
