package wallet

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

func CheckBalance(c *fiber.Ctx) error {
	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	bal, trxs, err := services.GetBalance(database.DB, actor.UserID, 20)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"user_id":      bal.UserID,
		"coins":        bal.Coins,
		"role":         bal.Role,
		"transactions": trxs,
	})
}
