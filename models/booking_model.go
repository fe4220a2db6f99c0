package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Cancelled bookings keep their row; the slot they held
// becomes selectable again.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking reserves one fixed hourly slot on one ground for one calendar day.
// Date is a plain "2006-01-02" string and the times are "HH:MM" strings so
// the ground+date+start+end uniqueness check is exact string equality.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null" json:"userId"`
	UserName   string    `gorm:"size:255" json:"userName"`
	GroundID   string    `gorm:"size:50;not null" json:"groundId"`
	GroundName string    `gorm:"size:255;not null" json:"groundName"`
	Date       string    `gorm:"size:10;not null" json:"date"`
	StartTime  string    `gorm:"size:5;not null" json:"startTime"`
	EndTime    string    `gorm:"size:5;not null" json:"endTime"`
	Price      float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Status     string    `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	Reference  string    `gorm:"size:12;unique" json:"reference"`

	PaymentID       *string `gorm:"size:100" json:"paymentId,omitempty"`
	ContactEmail    *string `gorm:"size:255" json:"contactEmail,omitempty"`
	SpecialRequests *string `gorm:"type:text" json:"specialRequests,omitempty"`
	ReceiptURL      *string `gorm:"size:255" json:"receiptUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
