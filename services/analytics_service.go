package services

import (
	"sort"
	"time"

	"github.com/gambosports/gambo_sports/models"
)

// Analytics are recomputed from the full record set on every request. There
// is no cache and no incremental maintenance; cost is O(records) per call.

type MonthlyUsers struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type UserAnalytics struct {
	TotalUsers        int            `json:"totalUsers"`
	ActiveUsers       int            `json:"activeUsers"`
	NewUsersThisMonth int            `json:"newUsersThisMonth"`
	UserGrowth        []MonthlyUsers `json:"userGrowth"`
}

// BuildUserAnalytics buckets signups by creation month over the trailing six
// calendar months, oldest month first.
func BuildUserAnalytics(users []models.User, now time.Time) UserAnalytics {
	analytics := UserAnalytics{TotalUsers: len(users)}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, user := range users {
		if user.Active {
			analytics.ActiveUsers++
		}
		if !user.CreatedAt.Before(startOfMonth) {
			analytics.NewUsersThisMonth++
		}
	}

	for i := 5; i >= 0; i-- {
		month := startOfMonth.AddDate(0, -i, 0)
		count := 0
		for _, user := range users {
			if user.CreatedAt.Month() == month.Month() && user.CreatedAt.Year() == month.Year() {
				count++
			}
		}
		analytics.UserGrowth = append(analytics.UserGrowth, MonthlyUsers{
			Month: month.Format("Jan"),
			Users: count,
		})
	}

	return analytics
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type GroundRevenue struct {
	Ground  string  `json:"ground"`
	Revenue float64 `json:"revenue"`
}

type RevenueAnalytics struct {
	TotalRevenue    float64          `json:"totalRevenue"`
	MonthlyRevenue  []MonthlyRevenue `json:"monthlyRevenue"`
	RevenueByGround []GroundRevenue  `json:"revenueByGround"`
}

// BuildRevenueAnalytics sums prices of non-cancelled bookings: in total, per
// trailing calendar month (bucketed on the booking's own date, not its
// creation time), and per ground sorted highest first.
func BuildRevenueAnalytics(bookings []models.Booking, now time.Time) RevenueAnalytics {
	analytics := RevenueAnalytics{}

	for _, booking := range bookings {
		if booking.Status != models.BookingStatusCancelled {
			analytics.TotalRevenue += booking.Price
		}
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 5; i >= 0; i-- {
		month := startOfMonth.AddDate(0, -i, 0)
		var revenue float64
		for _, booking := range bookings {
			if booking.Status == models.BookingStatusCancelled {
				continue
			}
			bookingDate, err := time.Parse("2006-01-02", booking.Date)
			if err != nil {
				continue
			}
			if bookingDate.Month() == month.Month() && bookingDate.Year() == month.Year() {
				revenue += booking.Price
			}
		}
		analytics.MonthlyRevenue = append(analytics.MonthlyRevenue, MonthlyRevenue{
			Month:   month.Format("Jan"),
			Revenue: revenue,
		})
	}

	totals := make(map[string]float64)
	var order []string
	for _, booking := range bookings {
		if booking.Status == models.BookingStatusCancelled {
			continue
		}
		if _, seen := totals[booking.GroundName]; !seen {
			order = append(order, booking.GroundName)
		}
		totals[booking.GroundName] += booking.Price
	}
	for _, ground := range order {
		analytics.RevenueByGround = append(analytics.RevenueByGround, GroundRevenue{
			Ground:  ground,
			Revenue: totals[ground],
		})
	}
	sort.SliceStable(analytics.RevenueByGround, func(i, j int) bool {
		return analytics.RevenueByGround[i].Revenue > analytics.RevenueByGround[j].Revenue
	})

	return analytics
}

type ProgramTeams struct {
	Program string `json:"program"`
	Teams   int    `json:"teams"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type TeamAnalytics struct {
	TotalTeams          int            `json:"totalTeams"`
	TotalPlayers        int            `json:"totalPlayers"`
	TeamsByProgram      []ProgramTeams `json:"teamsByProgram"`
	PopularTrainingDays []DayCount     `json:"popularTrainingDays"`
}

// BuildTeamAnalytics counts teams per program and occurrences of each
// training day across all teams. Every weekday appears in the result even at
// zero; ties on count fall back to canonical weekday order.
func BuildTeamAnalytics(teams []models.PremiumTeam) TeamAnalytics {
	analytics := TeamAnalytics{TotalTeams: len(teams)}

	programs := make(map[string]int)
	var programOrder []string
	for _, team := range teams {
		analytics.TotalPlayers += len(team.Players)
		if _, seen := programs[team.Package]; !seen {
			programOrder = append(programOrder, team.Package)
		}
		programs[team.Package]++
	}
	for _, program := range programOrder {
		analytics.TeamsByProgram = append(analytics.TeamsByProgram, ProgramTeams{
			Program: program,
			Teams:   programs[program],
		})
	}
	sort.SliceStable(analytics.TeamsByProgram, func(i, j int) bool {
		return analytics.TeamsByProgram[i].Teams > analytics.TeamsByProgram[j].Teams
	})

	counts := make(map[string]int, len(Weekdays))
	for _, day := range Weekdays {
		counts[day] = 0
	}
	for _, team := range teams {
		for _, day := range team.TrainingDays {
			counts[day]++
		}
	}
	for _, day := range Weekdays {
		analytics.PopularTrainingDays = append(analytics.PopularTrainingDays, DayCount{
			Day:   day,
			Count: counts[day],
		})
	}
	sort.SliceStable(analytics.PopularTrainingDays, func(i, j int) bool {
		if analytics.PopularTrainingDays[i].Count != analytics.PopularTrainingDays[j].Count {
			return analytics.PopularTrainingDays[i].Count > analytics.PopularTrainingDays[j].Count
		}
		return WeekdayIndex(analytics.PopularTrainingDays[i].Day) < WeekdayIndex(analytics.PopularTrainingDays[j].Day)
	})

	return analytics
}
