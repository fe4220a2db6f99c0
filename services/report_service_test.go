package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingReportCSV_RoundTrip(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:         uuid.New(),
			UserName:   "Jane Doe",
			GroundName: "Main Stadium",
			Date:       "2024-06-01",
			StartTime:  "09:00",
			EndTime:    "10:00",
			Price:      60,
			Status:     models.BookingStatusConfirmed,
		},
		{
			ID:         uuid.New(),
			UserName:   `Smith, "Bob"`,
			GroundName: "Training Ground A",
			Date:       "2024-06-02",
			StartTime:  "14:00",
			EndTime:    "15:00",
			Price:      20.5,
			Status:     models.BookingStatusCancelled,
		},
	}

	data, err := services.BuildBookingReportCSV(bookings)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "User", "Ground", "Date", "Start Time", "End Time", "Price", "Status"}, records[0])

	for i, booking := range bookings {
		row := records[i+1]
		require.Len(t, row, 8)
		assert.Equal(t, booking.ID.String(), row[0])
		assert.Equal(t, booking.UserName, row[1], "commas and quotes survive the round trip")
		assert.Equal(t, booking.GroundName, row[2])
		assert.Equal(t, booking.Date, row[3])
		assert.Equal(t, booking.StartTime, row[4])
		assert.Equal(t, booking.EndTime, row[5])
		assert.Equal(t, booking.Status, row[7])
	}

	assert.Equal(t, "60.00", records[1][6])
	assert.Equal(t, "20.50", records[2][6])
}

func TestBuildBookingReportCSV_Empty(t *testing.T) {
	data, err := services.BuildBookingReportCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
