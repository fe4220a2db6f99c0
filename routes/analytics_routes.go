package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func AnalyticsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	analytics := api.Group("/analytics", middleware.Protected(), middleware.ActiveAccount())
	analytics.Get("/users", handlers.GetUserAnalytics)
	analytics.Get("/revenue", handlers.GetRevenueAnalytics)
	analytics.Get("/teams", handlers.GetTeamAnalytics)
}
