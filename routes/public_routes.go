package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/grounds", handlers.GetGrounds)
	api.Get("/timeslots", handlers.GetTimeSlots)
	api.Get("/packages", handlers.GetPricingTiers)
}
