package wallet

import (
	"encoding/json"
	"log"

	"coincore/database"
	"coincore/helpers"
	"coincore/middlewares"
	"coincore/models"
	"coincore/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PurchaseRequest is the already-verified payment event forwarded by the
// payment handler. Gateway protocol details never reach this service.
type PurchaseRequest struct {
	Coins      int64  `json:"coins"`
	PaidAmount string `json:"paid_amount"`
	Currency   string `json:"currency"`
	PaymentRef string `json:"payment_ref"`
}

func ConfirmPurchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Coins <= 0 || req.PaymentRef == "" {
		return helpers.JSONError(c, "COINS_AND_PAYMENT_REF_REQUIRED")
	}

	paid, err := decimal.NewFromString(req.PaidAmount)
	if err != nil || paid.IsNegative() {
		return helpers.JSONError(c, "INVALID_PAID_AMOUNT")
	}

	actor, ok := middlewares.Actor(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED")
	}

	meta, _ := json.Marshal(fiber.Map{
		"paid_amount": paid.String(),
		"currency":    req.Currency,
		"payment_ref": req.PaymentRef,
	})

	bal, err := services.CreditWithRef(database.DB, actor.UserID, req.Coins,
		models.TrxPurchase, "Coin purchase", "purchase:"+req.PaymentRef,
		datatypes.JSON(meta), actor)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	log.Printf("[WALLET] ✅ Purchase credited: user=%d coins=%d paid=%s %s ref=%s",
		actor.UserID, req.Coins, paid.String(), req.Currency, req.PaymentRef)

	return helpers.JSONSuccess(c, "Purchase credited successfully", fiber.Map{
		"user_id": bal.UserID,
		"coins":   bal.Coins,
		"ref_id":  "purchase:" + req.PaymentRef,
	})
}
