package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware validates bearer tokens and attaches identity claims to
// the request.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate enforces a valid bearer token for protected routes.
// A missing header and a rejected token short-circuit with distinct
// messages so clients can tell "no credential" from "bad credential".
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("No Token")
	}

	claims, err := m.tokens.ParseToken(StripBearer(authHeader))
	if err != nil {
		return apperrors.NewUnauthorized(err.Error())
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated identity.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}
