package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/services"
)

func GetGrounds(c *fiber.Ctx) error {
	return c.JSON(services.Grounds)
}

func GetTimeSlots(c *fiber.Ctx) error {
	return c.JSON(services.TimeSlots)
}

func GetPricingTiers(c *fiber.Ctx) error {
	return c.JSON(services.PricingTiers)
}
