package services_test

import (
	"testing"
	"time"

	"github.com/gambosports/gambo_sports/models"
	"github.com/gambosports/gambo_sports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userCreatedAt(created time.Time, active bool) models.User {
	return models.User{
		Name:      "Test User",
		Email:     "user@example.com",
		Active:    active,
		CreatedAt: created,
	}
}

func TestBuildUserAnalytics(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	users := []models.User{
		userCreatedAt(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), true),
		userCreatedAt(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), false),
		userCreatedAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), true),
		userCreatedAt(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), true),
		userCreatedAt(time.Date(2023, time.June, 14, 0, 0, 0, 0, time.UTC), true),
	}

	analytics := services.BuildUserAnalytics(users, now)

	assert.Equal(t, 5, analytics.TotalUsers)
	assert.Equal(t, 4, analytics.ActiveUsers)
	assert.Equal(t, 2, analytics.NewUsersThisMonth)

	require.Len(t, analytics.UserGrowth, 6)
	months := make([]string, 0, 6)
	for _, bucket := range analytics.UserGrowth {
		months = append(months, bucket.Month)
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, months)

	assert.Equal(t, 1, analytics.UserGrowth[0].Users, "January signup")
	assert.Equal(t, 0, analytics.UserGrowth[1].Users)
	assert.Equal(t, 1, analytics.UserGrowth[2].Users, "March signup")
	assert.Equal(t, 2, analytics.UserGrowth[5].Users, "June 2023 is outside the window")
}

func TestBuildRevenueAnalytics(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{GroundName: "Main Stadium", Date: "2024-06-01", Price: 60, Status: models.BookingStatusConfirmed},
		{GroundName: "Training Ground A", Date: "2024-06-02", Price: 20, Status: models.BookingStatusConfirmed},
		{GroundName: "Training Ground A", Date: "2024-05-20", Price: 20, Status: models.BookingStatusPending},
		{GroundName: "Main Stadium", Date: "2024-04-10", Price: 60, Status: models.BookingStatusCancelled},
		{GroundName: "Main Stadium", Date: "2024-01-05", Price: 60, Status: models.BookingStatusConfirmed},
	}

	analytics := services.BuildRevenueAnalytics(bookings, now)

	assert.Equal(t, 160.0, analytics.TotalRevenue, "cancelled bookings excluded")

	require.Len(t, analytics.MonthlyRevenue, 6)
	assert.Equal(t, "Jan", analytics.MonthlyRevenue[0].Month)
	assert.Equal(t, 60.0, analytics.MonthlyRevenue[0].Revenue)
	assert.Equal(t, 0.0, analytics.MonthlyRevenue[3].Revenue, "April booking was cancelled")
	assert.Equal(t, 20.0, analytics.MonthlyRevenue[4].Revenue)
	assert.Equal(t, 80.0, analytics.MonthlyRevenue[5].Revenue)

	require.Len(t, analytics.RevenueByGround, 2)
	assert.Equal(t, "Main Stadium", analytics.RevenueByGround[0].Ground)
	assert.Equal(t, 120.0, analytics.RevenueByGround[0].Revenue)
	assert.Equal(t, "Training Ground A", analytics.RevenueByGround[1].Ground)
	assert.Equal(t, 40.0, analytics.RevenueByGround[1].Revenue)
}

func TestBuildRevenueAnalytics_BucketsByBookingDate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	// Created in June but booked for May: revenue lands in the May bucket.
	b := models.Booking{GroundName: "Main Stadium", Date: "2024-05-30", Price: 60, Status: models.BookingStatusConfirmed}
	b.CreatedAt = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	analytics := services.BuildRevenueAnalytics([]models.Booking{b}, now)

	require.Len(t, analytics.MonthlyRevenue, 6)
	assert.Equal(t, 60.0, analytics.MonthlyRevenue[4].Revenue)
	assert.Equal(t, 0.0, analytics.MonthlyRevenue[5].Revenue)
}

func TestBuildTeamAnalytics(t *testing.T) {
	teams := []models.PremiumTeam{
		{
			Package:      "Elite Training",
			TrainingDays: []string{"Monday", "Wednesday", "Friday"},
			Players:      []models.Player{{Name: "Amy", Age: "12"}, {Name: "Ben", Age: "13"}},
		},
		{
			Package:      "Basic Training",
			TrainingDays: []string{"Monday"},
			Players:      []models.Player{{Name: "Cara", Age: "11"}},
		},
		{
			Package:      "Elite Training",
			TrainingDays: []string{"Wednesday", "Friday", "Saturday"},
			Players:      []models.Player{{Name: "Dan", Age: "14"}},
		},
	}

	analytics := services.BuildTeamAnalytics(teams)

	assert.Equal(t, 3, analytics.TotalTeams)
	assert.Equal(t, 4, analytics.TotalPlayers)

	require.Len(t, analytics.TeamsByProgram, 2)
	assert.Equal(t, "Elite Training", analytics.TeamsByProgram[0].Program)
	assert.Equal(t, 2, analytics.TeamsByProgram[0].Teams)

	require.Len(t, analytics.PopularTrainingDays, 7, "every weekday is reported")
	// Monday, Wednesday and Friday all have count 2: ties fall back to
	// canonical weekday order.
	assert.Equal(t, services.DayCount{Day: "Monday", Count: 2}, analytics.PopularTrainingDays[0])
	assert.Equal(t, services.DayCount{Day: "Wednesday", Count: 2}, analytics.PopularTrainingDays[1])
	assert.Equal(t, services.DayCount{Day: "Friday", Count: 2}, analytics.PopularTrainingDays[2])
	assert.Equal(t, services.DayCount{Day: "Saturday", Count: 1}, analytics.PopularTrainingDays[3])
}

func TestBuildTeamAnalytics_TieBreakUsesWeekdayOrder(t *testing.T) {
	teams := []models.PremiumTeam{
		{Package: "Basic Training", TrainingDays: []string{"Sunday", "Tuesday"}},
	}

	analytics := services.BuildTeamAnalytics(teams)

	require.Len(t, analytics.PopularTrainingDays, 7)
	assert.Equal(t, "Tuesday", analytics.PopularTrainingDays[0].Day)
	assert.Equal(t, "Sunday", analytics.PopularTrainingDays[1].Day)
	assert.Equal(t, "Monday", analytics.PopularTrainingDays[2].Day, "zero-count days follow canonical order")
}
