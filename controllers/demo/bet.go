package demo

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type BetRequest struct {
	DemoUserID uint   `json:"demo_user_id"`
	GameID     string `json:"game_id"`
	Amount     int64  `json:"amount"`
}

func PlaceBet(c *fiber.Ctx) error {
	var req BetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.DemoUserID == 0 || req.GameID == "" || req.Amount <= 0 {
		return helpers.JSONError(c, "DEMO_USER_ID_GAME_ID_AND_AMOUNT_REQUIRED")
	}

	bet, user, err := services.PlaceDemoBet(database.DB, req.DemoUserID, req.GameID, req.Amount, nil)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Demo bet placed successfully", fiber.Map{
		"bet_id":  bet.ID,
		"game_id": bet.GameID,
		"amount":  bet.Amount,
		"status":  bet.Status,
		"coins":   user.Coins,
	})
}
