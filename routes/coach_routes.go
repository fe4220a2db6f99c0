package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func CoachRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	coaches := api.Group("/coaches")
	coaches.Get("", handlers.GetAllCoaches)
	coaches.Get("/:coachId", handlers.GetCoach)

	coaches.Post("", middleware.Protected(), middleware.ActiveAccount(), handlers.CreateCoach)
	coaches.Patch("/:coachId", middleware.Protected(), middleware.ActiveAccount(), handlers.UpdateCoach)
	coaches.Delete("/:coachId", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteCoach)
}
