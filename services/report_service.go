package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gambosports/gambo_sports/models"
)

var bookingReportHeaders = []string{"ID", "User", "Ground", "Date", "Start Time", "End Time", "Price", "Status"}

// BuildBookingReportCSV renders the bookings as a CSV document, one row per
// booking in the given order.
func BuildBookingReportCSV(bookings []models.Booking) ([]byte, error) {
	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	if err := w.Write(bookingReportHeaders); err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		row := []string{
			booking.ID.String(),
			booking.UserName,
			booking.GroundName,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			fmt.Sprintf("%.2f", booking.Price),
			booking.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
