package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/signup", handlers.SignupUser)
	users.Post("/login", handlers.LoginUser)

	users.Get("", middleware.Protected(), middleware.ActiveAccount(), handlers.GetAllUsers)
	users.Patch("/:userId/status", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateUserStatus)
	users.Patch("/:userId", middleware.Protected(), middleware.ActiveAccount(), handlers.UpdateUser)

	profile := api.Group("/profile/me", middleware.Protected(), middleware.ActiveAccount())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
}
