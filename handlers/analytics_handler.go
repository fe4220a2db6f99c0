package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
)

// The analytics endpoints fetch the full collection and recompute on every
// call. No caching.

func GetUserAnalytics(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(services.BuildUserAnalytics(users, time.Now()))
}

func GetRevenueAnalytics(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(services.BuildRevenueAnalytics(bookings, time.Now()))
}

func GetTeamAnalytics(c *fiber.Ctx) error {
	var teams []models.PremiumTeam
	if err := database.DB.Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(services.BuildTeamAnalytics(teams))
}
