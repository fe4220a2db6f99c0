package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TeamStatusActive    = "active"
	TeamStatusPending   = "pending"
	TeamStatusCancelled = "cancelled"
)

type Player struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// PremiumTeam is a group signed up for a recurring coaching program.
// Training days and players are stored as JSON columns; the coach is
// referenced by name only, matching how signups are composed client-side.
type PremiumTeam struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null" json:"userId"`
	Coach      string    `gorm:"size:255;not null" json:"coach"`
	CoachImage string    `gorm:"size:255" json:"coachImage"`
	Package    string    `gorm:"size:100;not null" json:"package"`
	StartDate  string    `gorm:"size:10;not null" json:"startDate"`
	EndDate    string    `gorm:"size:10;not null" json:"endDate"`

	TrainingDays []string `gorm:"serializer:json" json:"trainingDays"`
	Players      []Player `gorm:"serializer:json" json:"players"`

	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
