package wizard_test

import (
	"testing"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/wizard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingWizard_HappyPath(t *testing.T) {
	w := wizard.NewBookingWizard(nil)
	assert.Equal(t, wizard.StepSelectGround, w.Step())

	require.NoError(t, w.SelectGround("ground2"))
	require.NoError(t, w.Next())
	assert.Equal(t, wizard.StepSelectDateTime, w.Step())

	w.SelectDate("2024-06-01")
	require.NoError(t, w.SelectSlot("09:00", "10:00"))
	require.NoError(t, w.Next())
	assert.Equal(t, wizard.StepContactInfo, w.Step())

	w.SetContact("jane@example.com", "need two extra balls")
	require.NoError(t, w.Next())
	assert.Equal(t, wizard.StepConfirmBooking, w.Step())

	userID := uuid.New()
	booking, err := w.Confirm(userID, "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, "Jane Doe", booking.UserName)
	assert.Equal(t, "ground2", booking.GroundID)
	assert.Equal(t, "Training Ground A", booking.GroundName)
	assert.Equal(t, "2024-06-01", booking.Date)
	assert.Equal(t, "09:00", booking.StartTime)
	assert.Equal(t, "10:00", booking.EndTime)
	assert.Equal(t, 20.0, booking.Price, "price copied from the ground catalog")
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.ContactEmail)
	assert.Equal(t, "jane@example.com", *booking.ContactEmail)
	require.NotNil(t, booking.SpecialRequests)
	assert.Equal(t, "need two extra balls", *booking.SpecialRequests)
}

func TestBookingWizard_StepGuards(t *testing.T) {
	w := wizard.NewBookingWizard(nil)

	assert.ErrorIs(t, w.Next(), wizard.ErrNoGroundChosen)
	assert.ErrorIs(t, w.SelectGround("ground9"), wizard.ErrInvalidGround)
	require.NoError(t, w.SelectGround("ground1"))
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), wizard.ErrNoDateChosen)
	w.SelectDate("2024-06-01")
	assert.ErrorIs(t, w.Next(), wizard.ErrNoSlotChosen)
	assert.ErrorIs(t, w.SelectSlot("09:00", "11:00"), wizard.ErrInvalidSlot)
	require.NoError(t, w.SelectSlot("09:00", "10:00"))
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), wizard.ErrContactRequired)
	w.SetContact("   ", "")
	assert.ErrorIs(t, w.Next(), wizard.ErrContactRequired, "whitespace-only email is rejected")
}

func TestBookingWizard_Back(t *testing.T) {
	w := wizard.NewBookingWizard(nil)
	require.NoError(t, w.SelectGround("ground1"))
	require.NoError(t, w.Next())

	w.Back()
	assert.Equal(t, wizard.StepSelectGround, w.Step())
	w.Back()
	assert.Equal(t, wizard.StepSelectGround, w.Step(), "cannot go before the first step")
}

func TestBookingWizard_SelectSlotRejectsBooked(t *testing.T) {
	existing := []models.Booking{{
		GroundID:  "ground1",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.BookingStatusConfirmed,
	}}

	w := wizard.NewBookingWizard(existing)
	require.NoError(t, w.SelectGround("ground1"))
	require.NoError(t, w.Next())
	w.SelectDate("2024-06-01")

	assert.ErrorIs(t, w.SelectSlot("09:00", "10:00"), wizard.ErrSlotTaken)
	require.NoError(t, w.SelectSlot("10:00", "11:00"), "adjacent hour is free")
}

// A booking that lands between slot selection and confirmation is caught by
// the confirm-time re-check, which sends the wizard back to the date/time
// step.
func TestBookingWizard_ConfirmConflictStepsBack(t *testing.T) {
	w := wizard.NewBookingWizard(nil)
	require.NoError(t, w.SelectGround("ground1"))
	require.NoError(t, w.Next())
	w.SelectDate("2024-06-01")
	require.NoError(t, w.SelectSlot("09:00", "10:00"))
	require.NoError(t, w.Next())
	w.SetContact("jane@example.com", "")
	require.NoError(t, w.Next())
	require.Equal(t, wizard.StepConfirmBooking, w.Step())

	w.RefreshBookings([]models.Booking{{
		GroundID:  "ground1",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.BookingStatusConfirmed,
	}})

	_, err := w.Confirm(uuid.New(), "Jane Doe")
	assert.ErrorIs(t, err, wizard.ErrSlotTaken)
	assert.Equal(t, wizard.StepSelectDateTime, w.Step())

	// A cancelled conflict does not block confirmation.
	w.RefreshBookings([]models.Booking{{
		GroundID:  "ground1",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.BookingStatusCancelled,
	}})
	_, err = w.Confirm(uuid.New(), "Jane Doe")
	assert.NoError(t, err)
}
