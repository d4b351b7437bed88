package routes

import (
	"luckywheel/controllers/admin"
	"luckywheel/controllers/spin"
	"luckywheel/database"
	"luckywheel/middlewares"
	"luckywheel/services"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	spin.Init(services.NewSpinService(database.DB, nil))

	api := app.Group("/api")

	// public
	api.Get("/prizes", spin.ListPrizes)
	api.Post("/redeem-code", spin.RedeemCode)
	api.Post("/admin/login", admin.Login)

	// session-scoped
	api.Get("/session", middlewares.SpinSessionAuth, spin.GetSession)
	spinroutes := api.Group("/spin", middlewares.SpinSessionAuth)
	spinroutes.Post("/start", spin.StartSpin)
	spinroutes.Post("/claim/:spin_token", spin.ClaimResult)
	spinroutes.Get("/history", spin.History)

	// admin
	adminroutes := api.Group("/admin", middlewares.AdminAuth)
	adminroutes.Post("/logout", admin.Logout)
	adminroutes.Get("/me", admin.Me)

	adminroutes.Get("/codes", admin.ListCodes)
	adminroutes.Post("/codes", admin.CreateCode)
	adminroutes.Post("/codes/generate-batch", admin.GenerateBatchCodes)
	adminroutes.Get("/codes/:id", admin.ShowCode)
	adminroutes.Put("/codes/:id", admin.UpdateCode)
	adminroutes.Delete("/codes/:id", admin.DeleteCode)

	adminroutes.Get("/prizes", admin.ListPrizes)
	adminroutes.Post("/prizes", admin.CreatePrize)
	adminroutes.Post("/prizes/reorder", admin.ReorderPrizes)
	adminroutes.Post("/prizes/auto-probability", admin.AutoProbability)
	adminroutes.Get("/prizes/:id", admin.ShowPrize)
	adminroutes.Put("/prizes/:id", admin.UpdatePrize)
	adminroutes.Delete("/prizes/:id", admin.DeletePrize)

	adminroutes.Get("/stats", admin.Overview)
	adminroutes.Get("/stats/results", admin.ListResults)
	adminroutes.Get("/stats/codes", admin.CodeUsage)

	adminroutes.Put("/results/:id/delivery", admin.UpdateDelivery)
	adminroutes.Post("/results/bulk-delivery", admin.BulkUpdateDelivery)
}
