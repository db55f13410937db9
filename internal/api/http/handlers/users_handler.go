package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/api/dto"
	"github.com/spec-kit/workout-service/internal/auth"
	"github.com/spec-kit/workout-service/internal/service"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.users.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Registered Successfully",
	})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"access": token})
}

// Profile handles GET /users/details.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	user, err := h.users.GetProfile(c.Context(), claims.SubjectID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"user": dto.NewUserResponse(user)})
}

// SetAsAdmin handles PATCH /users/:id/set-as-admin.
func (h *UsersHandler) SetAsAdmin(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewValidationError("User ID is required", nil)
	}

	user, err := h.users.SetAsAdmin(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"updatedUser": dto.NewUserResponse(user)})
}

// UpdatePassword handles PATCH /users/update-password.
func (h *UsersHandler) UpdatePassword(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("No Token")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.users.UpdatePassword(c.Context(), claims.SubjectID, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}
