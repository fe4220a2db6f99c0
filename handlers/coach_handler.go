package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/utils"
)

type CoachRequest struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Specialization string   `json:"specialization" validate:"required"`
	Experience     string   `json:"experience" validate:"required"`
	Availability   []string `json:"availability" validate:"required,min=1"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating" validate:"omitempty,min=0,max=5"`
}

func GetAllCoaches(c *fiber.Ctx) error {
	var coaches []models.Coach
	if err := database.DB.Find(&coaches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(coaches)
}

func GetCoach(c *fiber.Ctx) error {
	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", c.Params("coachId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Coach not found"})
	}
	return c.JSON(coach)
}

func CreateCoach(c *fiber.Ctx) error {
	var req CoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	image := req.Image
	if image == "" {
		image = utils.GenerateCoachAvatarURL(req.Name)
	}

	coach := models.Coach{
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Availability:   req.Availability,
		Bio:            req.Bio,
		Image:          image,
		Rating:         req.Rating,
	}
	if err := database.DB.Create(&coach).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create coach"})
	}
	return c.Status(fiber.StatusCreated).JSON(coach)
}

type UpdateCoachRequest struct {
	Name           *string   `json:"name"`
	Specialization *string   `json:"specialization"`
	Experience     *string   `json:"experience"`
	Availability   *[]string `json:"availability"`
	Bio            *string   `json:"bio"`
	Image          *string   `json:"image"`
	Rating         *float64  `json:"rating" validate:"omitempty,min=0,max=5"`
}

func UpdateCoach(c *fiber.Ctx) error {
	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", c.Params("coachId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Coach not found"})
	}

	var req UpdateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Specialization != nil {
		coach.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		coach.Experience = *req.Experience
	}
	if req.Availability != nil {
		coach.Availability = *req.Availability
	}
	if req.Bio != nil {
		coach.Bio = *req.Bio
	}
	if req.Image != nil {
		coach.Image = *req.Image
	}
	if req.Rating != nil {
		coach.Rating = *req.Rating
	}

	if err := database.DB.Save(&coach).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update coach"})
	}
	return c.JSON(coach)
}

func DeleteCoach(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Coach{}, "id = ?", c.Params("coachId"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete coach"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Coach not found"})
	}
	return c.JSON(fiber.Map{"message": "Coach deleted successfully"})
}
