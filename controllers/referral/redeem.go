package referral

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type RedeemRequest struct {
	Code string `json:"code"`
}

func Redeem(c *fiber.Ctx) error {
	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Code == "" {
		return helpers.JSONError(c, "CODE_REQUIRED")
	}

	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	rel, err := services.RedeemCode(database.DB, actor.UserID, req.Code)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Referral code redeemed successfully", fiber.Map{
		"referrer_id":  rel.ReferrerID,
		"referred_id":  rel.ReferredID,
		"status":       rel.Status,
		"reward_coins": rel.RewardCoins,
		"completed_at": rel.CompletedAt,
	})
}
