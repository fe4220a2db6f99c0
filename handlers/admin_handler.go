package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/notifications"
	"github.com/gambosports/gambo_sports/services"
	"github.com/gambosports/gambo_sports/websocket"
)

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := strings.TrimSpace(c.Query("search"))
	offset := (page - 1) * limit

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}

	countQuery.Count(&totalUsers)
	query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total_users":  totalUsers,
			"total_pages":  int(math.Ceil(float64(totalUsers) / float64(limit))),
			"current_page": page,
		},
	})
}

type UpdateUserStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// UpdateUserStatus toggles the active flag. An inactive account cannot log
// in and fails the per-request active check; tokens themselves are not
// revoked.
func UpdateUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Active status must be a boolean"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	user.Active = *req.Active
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update user status"})
	}

	websocket.Publish("user.status_changed", user)
	subject := "Your Account Has Been Reactivated"
	body := "<h1>Account Active</h1><p>Your account is active again. Welcome back!</p>"
	if !user.Active {
		subject = "Your Account Has Been Deactivated"
		body = "<h1>Account Deactivated</h1><p>Your account has been deactivated. Please contact an administrator if you believe this is a mistake.</p>"
	}
	go notifications.SendEmail(user.Name, user.Email, subject, body)

	return c.JSON(fiber.Map{"message": "User status updated successfully", "user": user})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	status := c.Query("status")
	offset := (page - 1) * limit

	var bookings []models.Booking
	var totalBookings int64

	query := database.DB.Model(&models.Booking{})
	countQuery := database.DB.Model(&models.Booking{})

	if status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	countQuery.Count(&totalBookings)
	query.Order("created_at desc").Offset(offset).Limit(limit).Find(&bookings)

	return c.JSON(fiber.Map{
		"data": bookings,
		"meta": fiber.Map{
			"total":     totalBookings,
			"page":      page,
			"last_page": int(math.Ceil(float64(totalBookings) / float64(limit))),
		},
	})
}

// GenerateBookingReport streams the bookings in the requested date range as
// a CSV attachment.
func GenerateBookingReport(c *fiber.Ctx) error {
	startDateStr := c.Query("start_date", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	endDateStr := c.Query("end_date", time.Now().Format("2006-01-02"))

	if _, err := time.Parse("2006-01-02", startDateStr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid start_date format. Use YYYY-MM-DD."})
	}
	if _, err := time.Parse("2006-01-02", endDateStr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid end_date format. Use YYYY-MM-DD."})
	}

	var bookings []models.Booking
	database.DB.
		Where("date BETWEEN ? AND ?", startDateStr, endDateStr).
		Order("date asc, start_time asc").
		Find(&bookings)

	csvBytes, err := services.BuildBookingReportCSV(bookings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build CSV report"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"bookings_%s_to_%s.csv\"", startDateStr, endDateStr))
	return c.Send(csvBytes)
}

// ReissueReceipt regenerates the PDF receipt for a booking in the
// background.
func ReissueReceipt(c *fiber.Ctx) error {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Booking not found"})
	}

	go services.GenerateBookingReceipt(booking)

	return c.JSON(fiber.Map{"message": "Receipt generation started"})
}
