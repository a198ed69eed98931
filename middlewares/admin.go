package middlewares

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin verifies the caller's role against their own balance row. The
// header role is a gateway claim only; the balance record is the source of
// truth for privileged operations.
func RequireAdmin(c *fiber.Ctx) error {
	actor, ok := Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	var bal models.Balance
	if err := database.DB.Where("user_id = ?", actor.UserID).First(&bal).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_ROLE_REQUIRED")
	}
	if bal.Role != models.RoleAdmin {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_ROLE_REQUIRED")
	}

	actor.Role = bal.Role
	c.Locals("actor", actor)
	return c.Next()
}
