package admin

import (
	"log"

	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/models"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type RemoveCoinsRequest struct {
	UserID uint   `json:"user_id"`
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}

func RemoveCoins(c *fiber.Ctx) error {
	var req RemoveCoinsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserID == 0 || req.Amount <= 0 {
		return helpers.JSONError(c, "USER_ID_AND_VALID_AMOUNT_REQUIRED")
	}

	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	note := req.Note
	if note == "" {
		note = "Admin coin deduction"
	}

	bal, err := services.Debit(database.DB, req.UserID, req.Amount, models.TrxAdminRemove, note, actor)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	log.Printf("[ADMIN] ✅ Admin %d debited %d coins from user %d (balance %d)",
		actor.UserID, req.Amount, req.UserID, bal.Coins)

	return helpers.JSONSuccess(c, "Coins removed successfully", fiber.Map{
		"user_id": bal.UserID,
		"coins":   bal.Coins,
	})
}
