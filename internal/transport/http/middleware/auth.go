package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/auth"
	"github.com/Pranshu-project/zyro/internal/entities"
)

// Locals keys set by Authenticate.
const (
	LocalUserID = "auth_user_id"
	LocalRole   = "auth_role"
)

// Authenticate validates the Bearer access token and stores the caller's
// identity in request locals.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return unauthorized(c)
		}

		claims, err := auth.ParseJWT(parts[1], secret)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole gates a route on a minimum role. The check is a pure
// predicate over (required role, actual role).
func RequireRole(required entities.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(entities.Role)
		if !role.AtLeast(required) {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "insufficient role",
			})
		}
		return c.Next()
	}
}

// UserID extracts the authenticated user id from request locals.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// Role extracts the authenticated role from request locals.
func Role(c *fiber.Ctx) entities.Role {
	role, _ := c.Locals(LocalRole).(entities.Role)
	return role
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "invalid or missing access token",
	})
}
