package wizard_test

import (
	"testing"
	"time"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/wizard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingWizard_HappyPath(t *testing.T) {
	w := wizard.NewTrainingWizard()
	assert.Equal(t, wizard.StepSelectPackage, w.Step())

	require.NoError(t, w.SelectTier("premium"))
	require.NoError(t, w.Next())

	w.SelectCoach("John Carter", "https://example.com/coach.png")
	require.NoError(t, w.Next())

	require.NoError(t, w.ToggleDay("Monday"))
	require.NoError(t, w.ToggleDay("Thursday"))
	require.NoError(t, w.Next())

	require.NoError(t, w.SetPlayer(0, "Amy", "12"))
	w.AddPlayer()
	require.NoError(t, w.SetPlayer(1, "Ben", "13"))
	require.NoError(t, w.Next())
	assert.Equal(t, wizard.StepReview, w.Step())

	userID := uuid.New()
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	team, err := w.Submit(userID, now)
	require.NoError(t, err)

	assert.Equal(t, userID, team.UserID)
	assert.Equal(t, "John Carter", team.Coach)
	assert.Equal(t, "Premium Training", team.Package)
	assert.Equal(t, "2024-06-01", team.StartDate)
	assert.Equal(t, "2024-06-29", team.EndDate, "programs run four weeks")
	assert.Equal(t, []string{"Monday", "Thursday"}, team.TrainingDays)
	assert.Equal(t, []models.Player{{Name: "Amy", Age: "12"}, {Name: "Ben", Age: "13"}}, team.Players)
	assert.Equal(t, models.TeamStatusActive, team.Status)
}

func TestTrainingWizard_DayEviction(t *testing.T) {
	w := wizard.NewTrainingWizard()
	require.NoError(t, w.SelectTier("elite"))

	require.NoError(t, w.ToggleDay("Monday"))
	require.NoError(t, w.ToggleDay("Tuesday"))
	require.NoError(t, w.ToggleDay("Wednesday"))
	// Fourth pick on a three-day tier evicts the oldest selection.
	require.NoError(t, w.ToggleDay("Thursday"))
	assert.Equal(t, []string{"Tuesday", "Wednesday", "Thursday"}, w.Days())

	// Toggling a selected day deselects it.
	require.NoError(t, w.ToggleDay("Wednesday"))
	assert.Equal(t, []string{"Tuesday", "Thursday"}, w.Days())

	assert.ErrorIs(t, w.ToggleDay("Funday"), wizard.ErrInvalidDay)
}

func TestTrainingWizard_DayQuotaWithoutTier(t *testing.T) {
	w := wizard.NewTrainingWizard()

	require.NoError(t, w.ToggleDay("Monday"))
	require.NoError(t, w.ToggleDay("Friday"))
	assert.Equal(t, []string{"Friday"}, w.Days(), "no tier selected means a one-day quota")
}

func TestTrainingWizard_StepGuards(t *testing.T) {
	w := wizard.NewTrainingWizard()

	assert.ErrorIs(t, w.Next(), wizard.ErrNoTierChosen)
	assert.ErrorIs(t, w.SelectTier("gold"), wizard.ErrInvalidTier)
	require.NoError(t, w.SelectTier("basic"))
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), wizard.ErrNoCoachChosen)
	w.SelectCoach("John Carter", "")
	require.NoError(t, w.Next())

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, "please select exactly 1 training day(s)", err.Error())
	require.NoError(t, w.ToggleDay("Saturday"))
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), wizard.ErrIncompletePlayer, "the roster starts with one blank player")
	require.NoError(t, w.SetPlayer(0, "Amy", ""))
	assert.ErrorIs(t, w.Next(), wizard.ErrIncompletePlayer)
	require.NoError(t, w.SetPlayer(0, "Amy", "12"))
	require.NoError(t, w.Next())
	assert.Equal(t, wizard.StepReview, w.Step())
}

func TestTrainingWizard_PlayerRoster(t *testing.T) {
	w := wizard.NewTrainingWizard()

	assert.ErrorIs(t, w.SetPlayer(1, "Amy", "12"), wizard.ErrPlayerIndex)
	w.AddPlayer()
	require.NoError(t, w.SetPlayer(0, "  Amy ", " 12 "))
	require.NoError(t, w.SetPlayer(1, "Ben", "13"))
	require.NoError(t, w.RemovePlayer(1))
	assert.ErrorIs(t, w.RemovePlayer(1), wizard.ErrPlayerIndex)

	require.NoError(t, w.SelectTier("basic"))
	w.SelectCoach("John Carter", "")
	require.NoError(t, w.ToggleDay("Monday"))

	team, err := w.Submit(uuid.New(), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []models.Player{{Name: "Amy", Age: "12"}}, team.Players, "player fields are trimmed")
}

func TestSessionsRemaining(t *testing.T) {
	assert.Equal(t, 4, wizard.SessionsRemaining("Basic Training"))
	assert.Equal(t, 8, wizard.SessionsRemaining("Premium Training"))
	assert.Equal(t, 12, wizard.SessionsRemaining("Elite Training"))
	assert.Equal(t, 8, wizard.SessionsRemaining("Legacy Package"))
}
