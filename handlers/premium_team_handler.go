package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/notifications"
	"github.com/gambosports/gambo_sports/websocket"
	"github.com/gambosports/gambo_sports/wizard"
)

type CreateTeamRequest struct {
	Coach        string          `json:"coach" validate:"required"`
	CoachImage   string          `json:"coachImage"`
	Package      string          `json:"package" validate:"required"`
	StartDate    string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	TrainingDays []string        `json:"trainingDays" validate:"required,min=1"`
	Players      []models.Player `json:"players"`
	Status       string          `json:"status" validate:"omitempty,oneof=active pending"`
}

func CreatePremiumTeam(c *fiber.Ctx) error {
	userID, err := uuid.Parse(tokenUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token subject"})
	}

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	for _, player := range req.Players {
		if strings.TrimSpace(player.Name) == "" || strings.TrimSpace(player.Age) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Every player needs a name and an age"})
		}
	}

	status := req.Status
	if status == "" {
		status = models.TeamStatusActive
	}

	team := models.PremiumTeam{
		UserID:       userID,
		Coach:        req.Coach,
		CoachImage:   req.CoachImage,
		Package:      req.Package,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		TrainingDays: req.TrainingDays,
		Players:      req.Players,
		Status:       status,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create premium team"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
		go notifications.SendEmail(user.Name, user.Email, "Welcome to Premium Training!",
			fmt.Sprintf("<h1>Signup Confirmed</h1><p>Your %s program with %s starts on %s. Training days: %s.</p>",
				team.Package, team.Coach, team.StartDate, strings.Join(team.TrainingDays, ", ")))
	}
	websocket.Publish("team.created", team)

	return c.Status(fiber.StatusCreated).JSON(team)
}

func GetAllPremiumTeams(c *fiber.Ctx) error {
	var teams []models.PremiumTeam
	if err := database.DB.Order("created_at desc").Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(teams)
}

func GetUserPremiumTeams(c *fiber.Ctx) error {
	var teams []models.PremiumTeam
	if err := database.DB.Where("user_id = ?", c.Params("userId")).Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(teams)
}

type teamWithSessions struct {
	models.PremiumTeam
	SessionsRemaining int `json:"sessionsRemaining"`
}

// GetMyPremiumTeams returns the caller's teams with the display-only
// sessions-remaining figure derived from the package name.
func GetMyPremiumTeams(c *fiber.Ctx) error {
	var teams []models.PremiumTeam
	if err := database.DB.Where("user_id = ?", tokenUserID(c)).Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	out := make([]teamWithSessions, 0, len(teams))
	for _, team := range teams {
		out = append(out, teamWithSessions{
			PremiumTeam:       team,
			SessionsRemaining: wizard.SessionsRemaining(team.Package),
		})
	}
	return c.JSON(out)
}

type UpdateTeamRequest struct {
	Coach        *string          `json:"coach"`
	CoachImage   *string          `json:"coachImage"`
	Package      *string          `json:"package"`
	StartDate    *string          `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string          `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	TrainingDays *[]string        `json:"trainingDays"`
	Players      *[]models.Player `json:"players"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active pending cancelled"`
}

func UpdatePremiumTeam(c *fiber.Ctx) error {
	var team models.PremiumTeam
	if err := database.DB.First(&team, "id = ?", c.Params("teamId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Premium team not found"})
	}

	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if req.Coach != nil {
		team.Coach = *req.Coach
	}
	if req.CoachImage != nil {
		team.CoachImage = *req.CoachImage
	}
	if req.Package != nil {
		team.Package = *req.Package
	}
	if req.StartDate != nil {
		team.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		team.EndDate = *req.EndDate
	}
	if req.TrainingDays != nil {
		team.TrainingDays = *req.TrainingDays
	}
	if req.Players != nil {
		team.Players = *req.Players
	}
	if req.Status != nil {
		team.Status = *req.Status
	}

	if err := database.DB.Save(&team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update premium team"})
	}
	return c.JSON(team)
}

// CancelPremiumTeam flips the caller's own team to cancelled. The record is
// kept; membership is never hard-deleted.
func CancelPremiumTeam(c *fiber.Ctx) error {
	userID := tokenUserID(c)

	var team models.PremiumTeam
	if err := database.DB.First(&team, "id = ?", c.Params("teamId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Premium team not found"})
	}

	if team.UserID.String() != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to cancel this membership"})
	}

	team.Status = models.TeamStatusCancelled
	if err := database.DB.Save(&team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to cancel membership"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", team.UserID).Error; err == nil {
		go notifications.SendEmail(user.Name, user.Email, "Premium Training Cancelled",
			fmt.Sprintf("<h1>Membership Cancelled</h1><p>Your %s program with %s has been cancelled.</p>", team.Package, team.Coach))
	}
	websocket.Publish("team.cancelled", team)

	return c.JSON(fiber.Map{"message": "Membership cancelled successfully", "team": team})
}
