package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// RequireAdmin ensures the authenticated caller holds the admin flag.
// It must run after Authenticate; the router only registers it inside
// the authenticated group, and it fails closed with 401 rather than
// crashing if claims are absent.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("No Token")
		}
		if !claims.IsAdmin {
			return apperrors.NewForbidden("Action Forbidden")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a caller identity is present, replying
// with a bare 401 otherwise.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := ClaimsFromContext(c); !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Next()
	}
}
