package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"

	"coincore/helpers"
	"coincore/models"

	"github.com/gofiber/fiber/v2"
)

// ActorAuth resolves the caller identity forwarded by the upstream gateway.
// The gateway authenticates the user and signs the identity headers with the
// shared secret; this service never sees credentials.
func ActorAuth(c *fiber.Ctx) error {
	userID := c.Get("X-User-ID")
	email := c.Get("X-User-Email")
	role := c.Get("X-User-Role")
	signature := c.Get("X-Gateway-Signature")

	if userID == "" || signature == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_HEADERS_REQUIRED")
	}

	if signature != SignActor(userID, email, role) {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_GATEWAY_SIGNATURE")
	}

	id, err := strconv.ParseUint(userID, 10, 32)
	if err != nil || id == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_ACTOR_ID")
	}

	c.Locals("actor", models.Actor{
		UserID: uint(id),
		Email:  email,
		Role:   role,
	})
	return c.Next()
}

// SignActor computes the gateway signature over the identity headers.
func SignActor(userID, email, role string) string {
	secret := os.Getenv("GATEWAY_SECRET")
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(userID + email + role))
	return hex.EncodeToString(h.Sum(nil))
}

// Actor returns the resolved caller identity set by ActorAuth.
func Actor(c *fiber.Ctx) (models.Actor, bool) {
	actor, ok := c.Locals("actor").(models.Actor)
	return actor, ok
}
