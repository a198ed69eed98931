package referral

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

func Stats(c *fiber.Ctx) error {
	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	stats, err := services.GetReferralStats(database.DB, actor.UserID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Referral stats retrieved successfully", stats)
}
