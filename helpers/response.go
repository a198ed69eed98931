package helpers

import (
	"errors"

	"coincore/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// ServiceError maps a service sentinel to its wire code and HTTP status, so
// the UI can tell ALREADY_REFERRED apart from INVALID_REFERRAL_CODE and
// INSUFFICIENT_BALANCE.
func ServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return JSONErrorStatus(c, fiber.StatusBadRequest, "INVALID_INPUT")
	case errors.Is(err, services.ErrForbidden):
		return JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_ROLE_REQUIRED")
	case errors.Is(err, services.ErrUserNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	case errors.Is(err, services.ErrBalanceNotFound):
		return JSONErrorStatus(c, fiber.StatusNotFound, "BALANCE_NOT_FOUND")
	case errors.Is(err, services.ErrInsufficientBalance):
		return JSONErrorStatus(c, fiber.StatusBadRequest, "INSUFFICIENT_BALANCE")
	case errors.Is(err, services.ErrInvalidReferralCode):
		return JSONErrorStatus(c, fiber.StatusNotFound, "INVALID_REFERRAL_CODE")
	case errors.Is(err, services.ErrSelfReferral):
		return JSONErrorStatus(c, fiber.StatusBadRequest, "SELF_REFERRAL_NOT_ALLOWED")
	case errors.Is(err, services.ErrAlreadyReferred):
		return JSONErrorStatus(c, fiber.StatusConflict, "ALREADY_REFERRED")
	case errors.Is(err, services.ErrCodeGenerationExhausted):
		return JSONErrorStatus(c, fiber.StatusInternalServerError, "CODE_GENERATION_EXHAUSTED")
	default:
		return JSONErrorStatus(c, fiber.StatusServiceUnavailable, "STORAGE_FAULT")
	}
}
