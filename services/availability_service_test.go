package services_test

import (
	"testing"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(groundID, date, start, end, status string) models.Booking {
	return models.Booking{
		GroundID:   groundID,
		GroundName: "Main Stadium",
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
}

func TestIsSlotBooked(t *testing.T) {
	existing := []models.Booking{
		booking("ground1", "2024-06-01", "09:00", "10:00", models.BookingStatusConfirmed),
	}

	assert.True(t, services.IsSlotBooked(existing, "ground1", "2024-06-01", "09:00", "10:00"))

	assert.False(t, services.IsSlotBooked(existing, "ground2", "2024-06-01", "09:00", "10:00"))
	assert.False(t, services.IsSlotBooked(existing, "ground1", "2024-06-02", "09:00", "10:00"))
	assert.False(t, services.IsSlotBooked(existing, "ground1", "2024-06-01", "10:00", "11:00"))
}

func TestIsSlotBooked_CancelledBookingFreesSlot(t *testing.T) {
	existing := []models.Booking{
		booking("ground1", "2024-06-01", "09:00", "10:00", models.BookingStatusCancelled),
	}

	assert.False(t, services.IsSlotBooked(existing, "ground1", "2024-06-01", "09:00", "10:00"))
}

// Matching is exact on all four fields: a window that contains an existing
// booking but has different boundaries is not flagged. Slots come from the
// fixed hourly list, so such windows cannot be produced through the normal
// flow.
func TestIsSlotBooked_ExactMatchOnly(t *testing.T) {
	existing := []models.Booking{
		booking("ground1", "2024-06-01", "09:00", "10:00", models.BookingStatusConfirmed),
	}

	assert.False(t, services.IsSlotBooked(existing, "ground1", "2024-06-01", "09:00", "11:00"))
	assert.False(t, services.IsSlotBooked(existing, "ground1", "2024-06-01", "09:30", "10:30"))
}

func TestGroundAvailability(t *testing.T) {
	existing := []models.Booking{
		booking("ground1", "2024-06-01", "09:00", "10:00", models.BookingStatusConfirmed),
		booking("ground1", "2024-06-01", "14:00", "15:00", models.BookingStatusPending),
		booking("ground1", "2024-06-01", "18:00", "19:00", models.BookingStatusCancelled),
	}

	slots := services.GroundAvailability(existing, "ground1", "2024-06-01")
	require.Len(t, slots, len(services.TimeSlots))

	byStart := make(map[string]services.SlotAvailability)
	for _, slot := range slots {
		byStart[slot.Start] = slot
	}

	assert.True(t, byStart["09:00"].Booked)
	assert.True(t, byStart["14:00"].Booked, "pending bookings hold their slot")
	assert.False(t, byStart["18:00"].Booked, "cancelled bookings do not hold their slot")
	assert.False(t, byStart["10:00"].Booked)
}

func TestTimeSlotsAreHourly(t *testing.T) {
	require.Len(t, services.TimeSlots, 12)
	assert.Equal(t, "09:00", services.TimeSlots[0].Start)
	assert.Equal(t, "21:00", services.TimeSlots[len(services.TimeSlots)-1].End)
	for i := 1; i < len(services.TimeSlots); i++ {
		assert.Equal(t, services.TimeSlots[i-1].End, services.TimeSlots[i].Start, "slots are contiguous")
	}
}
