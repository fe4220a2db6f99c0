package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/gambosports/gambo_sports/database"
	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/notifications"
)

// SendTrainingDayReminders runs once each morning and emails every active
// premium team that trains today. Teams outside their program window are
// skipped.
func SendTrainingDayReminders() {
	log.Println("Running job: SendTrainingDayReminders...")

	now := time.Now()
	today := now.Format("2006-01-02")
	weekday := now.Weekday().String()

	var teams []models.PremiumTeam
	if err := database.DB.Where("status = ?", models.TeamStatusActive).Find(&teams).Error; err != nil {
		log.Printf("Error fetching premium teams: %v", err)
		return
	}

	for _, team := range teams {
		if team.StartDate > today || team.EndDate < today {
			continue
		}
		trainsToday := false
		for _, day := range team.TrainingDays {
			if day == weekday {
				trainsToday = true
				break
			}
		}
		if !trainsToday {
			continue
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", team.UserID).Error; err != nil {
			continue
		}

		log.Printf("Sending training reminder for team %s", team.ID)
		emailBody := fmt.Sprintf(
			"<h1>Training Today</h1><p>Hi %s,</p><p>Your %s session with %s is today, %s. See you on the pitch!</p>",
			user.Name, team.Package, team.Coach, weekday,
		)
		go notifications.SendEmail(user.Name, user.Email, "Training Day Reminder", emailBody)
	}
}
