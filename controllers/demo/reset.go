package demo

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type ResetRequest struct {
	DemoUserID uint `json:"demo_user_id"`
}

func Reset(c *fiber.Ctx) error {
	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.DemoUserID == 0 {
		return helpers.JSONError(c, "DEMO_USER_ID_REQUIRED")
	}

	user, err := services.ResetDemoAccount(database.DB, req.DemoUserID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Demo account reset successfully", fiber.Map{
		"demo_user_id":  user.ID,
		"coins":         user.Coins,
		"last_reset_at": user.LastResetAt,
	})
}
