package referral

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

func GetCode(c *fiber.Ctx) error {
	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	code, err := services.GetOrCreateCode(database.DB, actor.UserID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Referral code retrieved successfully", fiber.Map{
		"code":       code.Code,
		"created_at": code.CreatedAt,
	})
}
