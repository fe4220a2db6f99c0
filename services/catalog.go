package services

// Ground is a bookable field. The catalog is fixed; grounds are not a CRUD
// surface.
type Ground struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

var Grounds = []Ground{
	{ID: "ground1", Name: "Main Stadium", Price: 60, Currency: "USD", Description: "Professional football stadium with seating for spectators"},
	{ID: "ground2", Name: "Training Ground A", Price: 20, Currency: "USD", Description: "Standard training ground with basic facilities"},
	{ID: "ground3", Name: "Training Ground B", Price: 40, Currency: "USD", Description: "Premium training ground with advanced facilities"},
}

func GroundByID(id string) *Ground {
	for i := range Grounds {
		if Grounds[i].ID == id {
			return &Grounds[i]
		}
	}
	return nil
}

// TimeSlot is one fixed hourly window. Bookings only ever reference slots
// from TimeSlots, which is what makes the exact-match availability check
// sufficient.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var TimeSlots = []TimeSlot{
	{Start: "09:00", End: "10:00"},
	{Start: "10:00", End: "11:00"},
	{Start: "11:00", End: "12:00"},
	{Start: "12:00", End: "13:00"},
	{Start: "13:00", End: "14:00"},
	{Start: "14:00", End: "15:00"},
	{Start: "15:00", End: "16:00"},
	{Start: "16:00", End: "17:00"},
	{Start: "17:00", End: "18:00"},
	{Start: "18:00", End: "19:00"},
	{Start: "19:00", End: "20:00"},
	{Start: "20:00", End: "21:00"},
}

// PricingTier is a premium training package. SessionsPerWeek doubles as the
// required training-day count in the signup wizard.
type PricingTier struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description"`
	SessionsPerWeek int     `json:"sessionsPerWeek"`
}

var PricingTiers = []PricingTier{
	{ID: "basic", Name: "Basic Training", Price: 100, Currency: "USD", Description: "1 session per week for 4 weeks", SessionsPerWeek: 1},
	{ID: "premium", Name: "Premium Training", Price: 200, Currency: "USD", Description: "2 sessions per week for 4 weeks", SessionsPerWeek: 2},
	{ID: "elite", Name: "Elite Training", Price: 300, Currency: "USD", Description: "3 sessions per week for 4 weeks", SessionsPerWeek: 3},
}

func TierByID(id string) *PricingTier {
	for i := range PricingTiers {
		if PricingTiers[i].ID == id {
			return &PricingTiers[i]
		}
	}
	return nil
}

// Weekdays in canonical order, used for day-popularity tie-breaking and the
// training-day selector.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return len(Weekdays)
}
