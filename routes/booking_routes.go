package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/handlers"
	"github.com/gambosports/gambo_sports/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings")
	bookings.Get("/availability", handlers.GetGroundAvailability)

	bookings.Post("", middleware.Protected(), middleware.ActiveAccount(), handlers.CreateBooking)
	bookings.Get("", middleware.Protected(), middleware.ActiveAccount(), handlers.GetAllBookings)
	bookings.Get("/user", middleware.Protected(), middleware.ActiveAccount(), handlers.GetMyBookings)
	bookings.Get("/user/:userId", middleware.Protected(), middleware.ActiveAccount(), handlers.GetUserBookings)
	bookings.Patch("/:bookingId", middleware.Protected(), middleware.ActiveAccount(), handlers.UpdateBooking)
}
