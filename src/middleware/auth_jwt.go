package middleware

import (
	"context"
	"strings"

	"Backend-Career-Advisor/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Revocations reports whether a token was logged out.
type Revocations interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AuthEnabled answers 503 while no JWT secret is configured.
func AuthEnabled(issuer *utils.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !issuer.Enabled() {
			return utils.HandleError(c, fiber.StatusServiceUnavailable, "Admin authentication is not configured")
		}
		return c.Next()
	}
}

// AuthJWT verifies the bearer token and stores its claims in Locals.
// revoked may be nil.
func AuthJWT(issuer *utils.TokenIssuer, revoked Revocations) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := BearerToken(c)
		if !ok {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if revoked != nil {
			found, err := revoked.Contains(c.UserContext(), tokenStr)
			if err != nil {
				return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
			}
			if found {
				return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
			}
		}

		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if got, _ := c.Locals("role").(string); got != role {
			return utils.HandleError(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
