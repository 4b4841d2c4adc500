package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "auth_claims"

// Middleware guards fiber routes with bearer tokens
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates the middleware over a token service
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate validates the bearer token and stores its claims on the context
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ErrMissingToken()
		}

		// format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		claims, err := m.tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireScope rejects requests whose token does not grant scope
func (m *Middleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetClaims(c)
		if !ok {
			return ErrMissingToken()
		}
		if !claims.HasScope(scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}

// GetClaims extracts the authenticated claims from the context
func GetClaims(c *fiber.Ctx) (*TokenClaims, bool) {
	claims, ok := c.Locals(claimsKey).(*TokenClaims)
	return claims, ok
}
