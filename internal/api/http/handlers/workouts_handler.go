package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/api/dto"
	"github.com/spec-kit/workout-service/internal/auth"
	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/service"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// WorkoutsHandler exposes workout endpoints.
type WorkoutsHandler struct {
	workouts *service.WorkoutService
}

// NewWorkoutsHandler constructs handler.
func NewWorkoutsHandler(workouts *service.WorkoutService) *WorkoutsHandler {
	return &WorkoutsHandler{workouts: workouts}
}

// Add handles POST /workouts/addWorkout.
func (h *WorkoutsHandler) Add(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	var req dto.WorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	workout, err := h.workouts.Add(c.Context(), claims.SubjectID, service.WorkoutInput{
		Name:            req.Name,
		DurationMinutes: req.Duration,
		Price:           req.Price,
		Status:          domain.WorkoutStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewWorkoutResponse(workout))
}

// ListMine handles GET /workouts/getMyWorkouts.
func (h *WorkoutsHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	workouts, err := h.workouts.ListMine(c.Context(), claims.SubjectID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"workouts": dto.NewWorkoutResponses(workouts)})
}

// Update handles PATCH /workouts/updateWorkout/:id.
func (h *WorkoutsHandler) Update(c *fiber.Ctx) error {
	var req dto.WorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	workout, err := h.workouts.Update(c.Context(), c.Params("id"), service.WorkoutInput{
		Name:            req.Name,
		DurationMinutes: req.Duration,
		Price:           req.Price,
		Status:          domain.WorkoutStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":        "Workout updated successfully",
		"updatedWorkout": dto.NewWorkoutResponse(workout),
	})
}

// Delete handles DELETE /workouts/deleteWorkout/:id.
func (h *WorkoutsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	if err := h.workouts.Delete(c.Context(), claims.SubjectID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Workout deleted successfully"})
}

// CompleteStatus handles PATCH /workouts/completeWorkoutStatus/:id.
func (h *WorkoutsHandler) CompleteStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	workout, err := h.workouts.CompleteStatus(c.Context(), claims.SubjectID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":        "Workout status updated successfully",
		"updatedWorkout": dto.NewWorkoutResponse(workout),
	})
}

// ListActive handles GET /workouts/active.
func (h *WorkoutsHandler) ListActive(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListActive(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"workouts": dto.NewWorkoutResponses(workouts)})
}

// Get handles GET /workouts/:id.
func (h *WorkoutsHandler) Get(c *fiber.Ctx) error {
	workout, err := h.workouts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"workout": dto.NewWorkoutResponse(workout)})
}

// SearchByName handles POST /workouts/search-by-name.
func (h *WorkoutsHandler) SearchByName(c *fiber.Ctx) error {
	var req dto.SearchByNameRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.WorkoutName == nil {
		return apperrors.NewValidationError("workoutName is required", nil)
	}

	workouts, err := h.workouts.SearchByName(c.Context(), *req.WorkoutName)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewWorkoutResponses(workouts))
}

// SearchByPrice handles POST /workouts/search-by-price.
func (h *WorkoutsHandler) SearchByPrice(c *fiber.Ctx) error {
	var req dto.SearchByPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.MinPrice == nil || req.MaxPrice == nil {
		return apperrors.NewValidationError("minPrice and maxPrice are required", nil)
	}

	workouts, err := h.workouts.SearchByPrice(c.Context(), *req.MinPrice, *req.MaxPrice)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewWorkoutResponses(workouts))
}
