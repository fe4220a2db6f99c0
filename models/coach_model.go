package models

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Specialization string    `gorm:"size:255;not null" json:"specialization"`
	Experience     string    `gorm:"size:255;not null" json:"experience"`
	Availability   []string  `gorm:"serializer:json" json:"availability"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Image          string    `gorm:"size:255" json:"image"`
	Rating         float64   `gorm:"default:0" json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
