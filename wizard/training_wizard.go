package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
	"github.com/google/uuid"
)

type TrainingStep int

const (
	StepSelectPackage TrainingStep = iota + 1
	StepSelectCoach
	StepSelectDays
	StepPlayerInfo
	StepReview
)

// Premium programs run for four weeks from the signup date.
const programDurationDays = 28

var (
	ErrInvalidTier      = errors.New("unknown training package")
	ErrNoTierChosen     = errors.New("please select a training package")
	ErrNoCoachChosen    = errors.New("please select a coach")
	ErrInvalidDay       = errors.New("unknown training day")
	ErrIncompletePlayer = errors.New("please fill in name and age for every player")
	ErrPlayerIndex      = errors.New("no such player entry")
)

// TrainingWizard walks a signup through package, coach, training days,
// player roster and review. The tier's weekly session count fixes how many
// days must be chosen; picking a day beyond that quota evicts the
// first-selected day instead of rejecting the pick.
type TrainingWizard struct {
	step       TrainingStep
	tier       *services.PricingTier
	coachName  string
	coachImage string
	days       []string
	players    []models.Player
}

func NewTrainingWizard() *TrainingWizard {
	return &TrainingWizard{
		step:    StepSelectPackage,
		players: []models.Player{{}},
	}
}

func (w *TrainingWizard) Step() TrainingStep { return w.step }

func (w *TrainingWizard) SelectTier(tierID string) error {
	tier := services.TierByID(tierID)
	if tier == nil {
		return ErrInvalidTier
	}
	w.tier = tier
	return nil
}

func (w *TrainingWizard) SelectCoach(name, image string) {
	w.coachName = name
	w.coachImage = image
}

// ToggleDay selects or deselects a training day. Selecting past the tier's
// quota drops the oldest selection and appends the new day.
func (w *TrainingWizard) ToggleDay(day string) error {
	if services.WeekdayIndex(day) >= len(services.Weekdays) {
		return ErrInvalidDay
	}

	for i, selected := range w.days {
		if selected == day {
			w.days = append(w.days[:i], w.days[i+1:]...)
			return nil
		}
	}

	maxDays := 1
	if w.tier != nil {
		maxDays = w.tier.SessionsPerWeek
	}
	if len(w.days) >= maxDays {
		w.days = append(w.days[1:], day)
		return nil
	}
	w.days = append(w.days, day)
	return nil
}

func (w *TrainingWizard) Days() []string {
	out := make([]string, len(w.days))
	copy(out, w.days)
	return out
}

func (w *TrainingWizard) AddPlayer() {
	w.players = append(w.players, models.Player{})
}

func (w *TrainingWizard) RemovePlayer(i int) error {
	if i < 0 || i >= len(w.players) {
		return ErrPlayerIndex
	}
	w.players = append(w.players[:i], w.players[i+1:]...)
	return nil
}

func (w *TrainingWizard) SetPlayer(i int, name, age string) error {
	if i < 0 || i >= len(w.players) {
		return ErrPlayerIndex
	}
	w.players[i] = models.Player{Name: strings.TrimSpace(name), Age: strings.TrimSpace(age)}
	return nil
}

func (w *TrainingWizard) Next() error {
	switch w.step {
	case StepSelectPackage:
		if w.tier == nil {
			return ErrNoTierChosen
		}
	case StepSelectCoach:
		if w.coachName == "" {
			return ErrNoCoachChosen
		}
	case StepSelectDays:
		if err := w.validateDays(); err != nil {
			return err
		}
	case StepPlayerInfo:
		if err := w.validatePlayers(); err != nil {
			return err
		}
	case StepReview:
		return nil
	}
	w.step++
	return nil
}

func (w *TrainingWizard) Back() {
	if w.step > StepSelectPackage {
		w.step--
	}
}

func (w *TrainingWizard) validateDays() error {
	if w.tier == nil {
		return ErrNoTierChosen
	}
	if len(w.days) != w.tier.SessionsPerWeek {
		return fmt.Errorf("please select exactly %d training day(s)", w.tier.SessionsPerWeek)
	}
	return nil
}

func (w *TrainingWizard) validatePlayers() error {
	for _, player := range w.players {
		if player.Name == "" || player.Age == "" {
			return ErrIncompletePlayer
		}
	}
	return nil
}

// Submit re-validates all collected input and composes the premium team.
// The end date is fixed at four weeks after signup.
func (w *TrainingWizard) Submit(userID uuid.UUID, now time.Time) (models.PremiumTeam, error) {
	if w.tier == nil {
		return models.PremiumTeam{}, ErrNoTierChosen
	}
	if w.coachName == "" {
		return models.PremiumTeam{}, ErrNoCoachChosen
	}
	if err := w.validateDays(); err != nil {
		return models.PremiumTeam{}, err
	}
	if err := w.validatePlayers(); err != nil {
		return models.PremiumTeam{}, err
	}

	startDate := now
	endDate := now.AddDate(0, 0, programDurationDays)

	team := models.PremiumTeam{
		UserID:       userID,
		Coach:        w.coachName,
		CoachImage:   w.coachImage,
		Package:      w.tier.Name,
		StartDate:    startDate.Format("2006-01-02"),
		EndDate:      endDate.Format("2006-01-02"),
		TrainingDays: w.Days(),
		Players:      append([]models.Player(nil), w.players...),
		Status:       models.TeamStatusActive,
	}
	return team, nil
}

// SessionsRemaining maps a package name to its total session count. This is
// a display value only; the server does not decrement it.
func SessionsRemaining(packageName string) int {
	if strings.Contains(packageName, "Basic") {
		return 4
	}
	if strings.Contains(packageName, "Premium") {
		return 8
	}
	if strings.Contains(packageName, "Elite") {
		return 12
	}
	return 8
}
