package wallet

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/models"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type GameCreditRequest struct {
	Amount   int64  `json:"amount"`
	GameID   string `json:"game_id"`
	RoundRef string `json:"round_ref"`
}

func GameCredit(c *fiber.Ctx) error {
	var req GameCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Amount <= 0 || req.GameID == "" || req.RoundRef == "" {
		return helpers.JSONError(c, "AMOUNT_GAME_ID_AND_ROUND_REF_REQUIRED")
	}

	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	bal, err := services.CreditWithRef(database.DB, actor.UserID, req.Amount,
		models.TrxGameCredit, "Game win "+req.GameID, "gamewin:"+req.RoundRef, nil, actor)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Game credit applied", fiber.Map{
		"user_id": bal.UserID,
		"coins":   bal.Coins,
	})
}
