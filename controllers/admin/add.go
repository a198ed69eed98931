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

type AddCoinsRequest struct {
	UserID uint   `json:"user_id"`
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}

func AddCoins(c *fiber.Ctx) error {
	var req AddCoinsRequest
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
		note = "Admin coin grant"
	}

	bal, err := services.Credit(database.DB, req.UserID, req.Amount, models.TrxAdminAdd, note, actor)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	log.Printf("[ADMIN] ✅ Admin %d credited %d coins to user %d (balance %d)",
		actor.UserID, req.Amount, req.UserID, bal.Coins)

	return helpers.JSONSuccess(c, "Coins added successfully", fiber.Map{
		"user_id": bal.UserID,
		"coins":   bal.Coins,
	})
}
