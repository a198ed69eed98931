package routes

import (
	"coincore/controllers/admin"
	"coincore/controllers/demo"
	"coincore/controllers/referral"
	"coincore/controllers/wallet"
	"coincore/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	adminroutes := app.Group("/admin", middlewares.ActorAuth, middlewares.RequireAdmin)
	adminroutes.Post("/coins/add", admin.AddCoins)
	adminroutes.Post("/coins/remove", admin.RemoveCoins)

	walletroutes := app.Group("/wallet", middlewares.ActorAuth)
	walletroutes.Post("/balance", wallet.CheckBalance)
	walletroutes.Post("/purchase", wallet.ConfirmPurchase)
	walletroutes.Post("/game/debit", wallet.GameDebit)
	walletroutes.Post("/game/credit", wallet.GameCredit)

	referralroutes := app.Group("/referral", middlewares.ActorAuth)
	referralroutes.Post("/code", referral.GetCode)
	referralroutes.Post("/redeem", referral.Redeem)
	referralroutes.Post("/stats", referral.Stats)

	// Demo namespace: trial users are unauthenticated and fully isolated from
	// real balances.
	demoroutes := app.Group("/demo")
	demoroutes.Post("/register", demo.Register)
	demoroutes.Post("/balance", demo.CheckBalance)
	demoroutes.Post("/reset", demo.Reset)
	demoroutes.Post("/bet", demo.PlaceBet)
}
