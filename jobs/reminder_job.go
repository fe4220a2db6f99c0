package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/notifications"
)

// SendBookingReminders emails users whose confirmed booking starts in about
// an hour. The job runs every 5 minutes over a sliding 5-minute window, so
// each booking is picked up exactly once.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var todaysBookings []models.Booking
	err := database.DB.
		Where("date = ? AND status = ?", now.Format("2006-01-02"), models.BookingStatusConfirmed).
		Find(&todaysBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	for _, booking := range todaysBookings {
		startAt, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.StartTime, now.Location())
		if err != nil {
			log.Printf("Skipping booking %s with unparsable start time %q", booking.ID, booking.StartTime)
			continue
		}
		if startAt.Before(lowerBound) || !startAt.Before(upperBound) {
			continue
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err != nil {
			continue
		}

		log.Printf("Sending reminder for booking %s", booking.Reference)
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi %s,</p><p>Your booking at %s starts in one hour, at %s.</p><p>Reference: <b>%s</b></p>",
			user.Name, booking.GroundName, booking.StartTime, booking.Reference,
		)
		go notifications.SendEmail(user.Name, user.Email, "Reminder: Your Ground Booking Starts in 1 Hour!", emailBody)
	}
}
