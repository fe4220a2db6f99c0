package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/notifications"
	"github.com/gambosports/gambo_sports/services"
	"github.com/gambosports/gambo_sports/utils"
	"github.com/gambosports/gambo_sports/websocket"
)

type CreateBookingRequest struct {
	GroundID        string  `json:"groundId" validate:"required"`
	GroundName      string  `json:"groundName" validate:"required"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"startTime" validate:"required"`
	EndTime         string  `json:"endTime" validate:"required"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=pending confirmed"`
	PaymentID       *string `json:"paymentId,omitempty"`
	ContactEmail    *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	userID, err := uuid.Parse(tokenUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token subject"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	// Same exact-match check the booking wizard runs client-side. The
	// check and the insert below are not wrapped in a transaction, so two
	// concurrent submissions for the same slot can both pass the check.
	var existing models.Booking
	err = database.DB.Where(
		"ground_id = ? AND date = ? AND start_time = ? AND end_time = ? AND status <> ?",
		req.GroundID, req.Date, req.StartTime, req.EndTime, models.BookingStatusCancelled,
	).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "This time slot is already booked",
		})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	reference, err := utils.GenerateUniqueBookingReference(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error creating booking"})
	}

	status := req.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	booking := models.Booking{
		UserID:          userID,
		UserName:        user.Name,
		GroundID:        req.GroundID,
		GroundName:      req.GroundName,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Price:           req.Price,
		Status:          status,
		Reference:       reference,
		PaymentID:       req.PaymentID,
		ContactEmail:    req.ContactEmail,
		SpecialRequests: req.SpecialRequests,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error creating booking"})
	}

	go services.GenerateBookingReceipt(booking)
	go notifications.SendEmail(user.Name, user.Email, "Your Booking is Confirmed!",
		fmt.Sprintf("<h1>Booking Confirmed</h1><p>%s is booked for %s, %s - %s.</p><p>Reference: <b>%s</b></p>",
			booking.GroundName, booking.Date, booking.StartTime, booking.EndTime, booking.Reference))
	websocket.Publish("booking.created", booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(bookings)
}

func GetUserBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", c.Params("userId")).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(bookings)
}

func GetMyBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", tokenUserID(c)).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(bookings)
}

// GetGroundAvailability returns every fixed slot for a ground and date with
// its booked flag, computed from the non-cancelled bookings of that day.
func GetGroundAvailability(c *fiber.Ctx) error {
	groundID := c.Query("groundId")
	date := c.Query("date")
	if groundID == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "groundId and date are required"})
	}

	var bookings []models.Booking
	if err := database.DB.Where("ground_id = ? AND date = ?", groundID, date).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"groundId": groundID,
		"date":     date,
		"slots":    services.GroundAvailability(bookings, groundID, date),
	})
}

type UpdateBookingRequest struct {
	UserID          *string  `json:"userId" validate:"omitempty,uuid"`
	GroundID        *string  `json:"groundId"`
	GroundName      *string  `json:"groundName"`
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string  `json:"startTime"`
	EndTime         *string  `json:"endTime"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	Status          *string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	PaymentID       *string  `json:"paymentId"`
	ContactEmail    *string  `json:"contactEmail" validate:"omitempty,email"`
	SpecialRequests *string  `json:"specialRequests"`
}

// UpdateBooking applies a partial update. Setting status to cancelled is the
// cancel path; the row is kept and its slot frees up immediately.
func UpdateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Booking not found"})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if req.UserID != nil {
		// Keep the denormalized user name in step with a reassigned owner.
		var user models.User
		if err := database.DB.First(&user, "id = ?", *req.UserID).Error; err == nil {
			booking.UserID = user.ID
			booking.UserName = user.Name
		}
	}
	if req.GroundID != nil {
		booking.GroundID = *req.GroundID
	}
	if req.GroundName != nil {
		booking.GroundName = *req.GroundName
	}
	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if req.Price != nil {
		booking.Price = *req.Price
	}
	if req.PaymentID != nil {
		booking.PaymentID = req.PaymentID
	}
	if req.ContactEmail != nil {
		booking.ContactEmail = req.ContactEmail
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = req.SpecialRequests
	}

	cancelled := false
	if req.Status != nil && *req.Status != booking.Status {
		booking.Status = *req.Status
		cancelled = *req.Status == models.BookingStatusCancelled
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update booking"})
	}

	if cancelled {
		websocket.Publish("booking.cancelled", booking)
		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err == nil {
			go notifications.SendEmail(user.Name, user.Email, "Your Booking Has Been Cancelled",
				fmt.Sprintf("<h1>Booking Cancelled</h1><p>Your booking for %s on %s, %s - %s has been cancelled. The slot is now open again.</p>",
					booking.GroundName, booking.Date, booking.StartTime, booking.EndTime))
		}
	}

	return c.JSON(booking)
}
