package demo

import (
	"coincore/database"
	"coincore/helpers"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" || req.Email == "" {
		return helpers.JSONError(c, "NAME_AND_EMAIL_REQUIRED")
	}

	user, err := services.RegisterDemoAccount(database.DB, req.Name, req.Email)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Demo account created successfully", fiber.Map{
		"demo_user_id": user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"coins":        user.Coins,
	})
}
