package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/services"
)

const (
	sessionContextKey = "currentSession"
	tokenContextKey   = "currentToken"
)

// AuthMiddleware requires a token issued by the gate, presented as a
// bearer header or a cookie, and loads the session into the request
// context.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		sess, err := auth.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(sessionContextKey, sess)
		c.Locals(tokenContextKey, token)
		return c.Next()
	}
}

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *fiber.Ctx) (models.Session, bool) {
	value := c.Locals(sessionContextKey)
	if value == nil {
		return models.Session{}, false
	}

	if sess, ok := value.(models.Session); ok {
		return sess, true
	}

	return models.Session{}, false
}

// CurrentToken returns the raw token the request authenticated with.
func CurrentToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(tokenContextKey).(string); ok {
		return token
	}
	return ""
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies("token")
}
