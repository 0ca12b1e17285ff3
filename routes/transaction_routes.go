package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterTransactionRoutes(app *fiber.App, tc *controllers.TransactionController, dc *controllers.DatabaseController) {
	api := app.Group("/api")

	api.Get("/initialize", dc.InitializeDatabase)

	api.Get("/transactions", tc.GetTransactions)
	api.Get("/statistics/:month", tc.GetStatistics)
	api.Get("/bar-chart/:month", tc.GetBarChart)
	api.Get("/pie-chart/:month", tc.GetPieChart)
	api.Get("/combined", tc.GetCombined)
}
