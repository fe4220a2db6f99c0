package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/users", handlers.GetAllUsers)
	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Post("/bookings/:bookingId/receipt", handlers.ReissueReceipt)

	reports := admin.Group("/reports")
	reports.Get("/bookings", handlers.GenerateBookingReport)

	uploads := admin.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)

	api.Use("/ws/admin", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/admin", websocket.New(handlers.ServeAdminWs))
}
