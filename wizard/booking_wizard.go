// Package wizard holds the multi-step flows behind the booking and premium
// training signup pages. Each wizard is a linear state machine: forward
// transitions are guarded, backward transitions are not, and the terminal
// action re-validates everything before composing the record to persist.
package wizard

import (
	"errors"
	"strings"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
	"github.com/google/uuid"
)

type BookingStep int

const (
	StepSelectGround BookingStep = iota + 1
	StepSelectDateTime
	StepContactInfo
	StepConfirmBooking
)

var (
	ErrInvalidGround   = errors.New("unknown ground")
	ErrNoGroundChosen  = errors.New("please select a ground")
	ErrNoDateChosen    = errors.New("please select a date")
	ErrNoSlotChosen    = errors.New("please select a time slot")
	ErrInvalidSlot     = errors.New("invalid time slot")
	ErrSlotTaken       = errors.New("this slot is already booked, please select another time")
	ErrContactRequired = errors.New("please provide a contact email")
)

// BookingWizard walks a user through ground, date/time, contact details and
// confirmation. It checks slot availability against the booking list it was
// given; the server re-runs the same check on create, so a stale list here
// only costs the user a round trip.
type BookingWizard struct {
	step            BookingStep
	ground          *services.Ground
	date            string
	slot            *services.TimeSlot
	contactEmail    string
	specialRequests string
	bookings        []models.Booking
}

func NewBookingWizard(existing []models.Booking) *BookingWizard {
	return &BookingWizard{step: StepSelectGround, bookings: existing}
}

func (w *BookingWizard) Step() BookingStep { return w.step }

// RefreshBookings swaps in a newer booking list, e.g. after a re-fetch.
func (w *BookingWizard) RefreshBookings(bookings []models.Booking) {
	w.bookings = bookings
}

func (w *BookingWizard) SelectGround(groundID string) error {
	ground := services.GroundByID(groundID)
	if ground == nil {
		return ErrInvalidGround
	}
	w.ground = ground
	return nil
}

func (w *BookingWizard) SelectDate(date string) {
	w.date = date
}

// SelectSlot rejects slots outside the fixed list and slots already flagged
// booked for the chosen ground and date.
func (w *BookingWizard) SelectSlot(start, end string) error {
	var slot *services.TimeSlot
	for i := range services.TimeSlots {
		if services.TimeSlots[i].Start == start && services.TimeSlots[i].End == end {
			slot = &services.TimeSlots[i]
			break
		}
	}
	if slot == nil {
		return ErrInvalidSlot
	}
	if w.ground != nil && services.IsSlotBooked(w.bookings, w.ground.ID, w.date, slot.Start, slot.End) {
		return ErrSlotTaken
	}
	w.slot = slot
	return nil
}

func (w *BookingWizard) SetContact(email, specialRequests string) {
	w.contactEmail = strings.TrimSpace(email)
	w.specialRequests = specialRequests
}

// Next advances one step if the current step's guard passes.
func (w *BookingWizard) Next() error {
	switch w.step {
	case StepSelectGround:
		if w.ground == nil {
			return ErrNoGroundChosen
		}
	case StepSelectDateTime:
		if err := w.validateDateTime(); err != nil {
			return err
		}
	case StepContactInfo:
		if w.contactEmail == "" {
			return ErrContactRequired
		}
	case StepConfirmBooking:
		return nil
	}
	w.step++
	return nil
}

// Back is unguarded.
func (w *BookingWizard) Back() {
	if w.step > StepSelectGround {
		w.step--
	}
}

func (w *BookingWizard) validateDateTime() error {
	if w.date == "" {
		return ErrNoDateChosen
	}
	if w.slot == nil {
		return ErrNoSlotChosen
	}
	if services.IsSlotBooked(w.bookings, w.ground.ID, w.date, w.slot.Start, w.slot.End) {
		return ErrSlotTaken
	}
	return nil
}

// Confirm re-validates every collected field and re-runs the availability
// check against the latest booking list, then composes the booking to
// persist. A conflict forces the wizard back to the date/time step.
func (w *BookingWizard) Confirm(userID uuid.UUID, userName string) (models.Booking, error) {
	if w.ground == nil {
		return models.Booking{}, ErrNoGroundChosen
	}
	if w.contactEmail == "" {
		return models.Booking{}, ErrContactRequired
	}
	if err := w.validateDateTime(); err != nil {
		if err == ErrSlotTaken {
			w.step = StepSelectDateTime
		}
		return models.Booking{}, err
	}

	contactEmail := w.contactEmail
	booking := models.Booking{
		UserID:       userID,
		UserName:     userName,
		GroundID:     w.ground.ID,
		GroundName:   w.ground.Name,
		Date:         w.date,
		StartTime:    w.slot.Start,
		EndTime:      w.slot.End,
		Price:        w.ground.Price,
		Status:       models.BookingStatusConfirmed,
		ContactEmail: &contactEmail,
	}
	if w.specialRequests != "" {
		specialRequests := w.specialRequests
		booking.SpecialRequests = &specialRequests
	}
	return booking, nil
}
