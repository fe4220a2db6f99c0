package services

import (
	"github.com/gambosports/gambo_sports/models"
)

// IsSlotBooked reports whether any non-cancelled booking holds exactly the
// given ground, date and slot boundaries. Matching is string equality on all
// four fields: slots come from the fixed TimeSlots list, so two bookings
// either share a slot exactly or not at all. Partial overlaps between
// mismatched boundaries are deliberately not considered.
func IsSlotBooked(bookings []models.Booking, groundID, date, startTime, endTime string) bool {
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if b.GroundID == groundID && b.Date == date && b.StartTime == startTime && b.EndTime == endTime {
			return true
		}
	}
	return false
}

// SlotAvailability is one time slot with its booked flag for a given
// ground and date.
type SlotAvailability struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Booked bool   `json:"booked"`
}

// GroundAvailability flags every fixed slot for the ground and date against
// the supplied booking list.
func GroundAvailability(bookings []models.Booking, groundID, date string) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		out = append(out, SlotAvailability{
			Start:  slot.Start,
			End:    slot.End,
			Booked: IsSlotBooked(bookings, groundID, date, slot.Start, slot.End),
		})
	}
	return out
}
