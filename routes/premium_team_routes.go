package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func PremiumTeamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teams := api.Group("/premiumTeams", middleware.Protected(), middleware.ActiveAccount())
	teams.Post("", handlers.CreatePremiumTeam)
	teams.Get("", handlers.GetAllPremiumTeams)
	teams.Get("/user", handlers.GetMyPremiumTeams)
	teams.Get("/user/:userId", handlers.GetUserPremiumTeams)
	teams.Patch("/cancel/:teamId", handlers.CancelPremiumTeam)
	teams.Patch("/:teamId", handlers.UpdatePremiumTeam)
}
