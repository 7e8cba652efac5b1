package planner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Trip duration bounds. Plans longer than MaxDays get unwieldy as text.
const (
	MinDays = 1
	MaxDays = 21
)

// User-facing messages returned instead of a plan on invalid input. The
// planner never fails with an error; callers always receive a string.
const (
	msgCityRequired = "Bitte eine Stadt angeben."
	msgDaysPositive = "Bitte die Anzahl Tage als positive Zahl angeben."
	msgDaysTooMany  = "Bitte maximal 21 Tage planen, sonst wird der Plan zu lang."
	msgDaysNotInt   = "Bitte 'days' als ganze Zahl angeben."
)

// NormalizeCity trims surrounding whitespace and title-cases each word.
// Idempotent: normalizing an already-normalized name yields the same name.
func NormalizeCity(city string) string {
	trimmed := strings.TrimSpace(city)

	var b strings.Builder
	b.Grow(len(trimmed))

	prevLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PlanTrip produces the formatted itinerary text for the given inputs, or a
// user-facing German message when the input is invalid. It never returns an
// error: the function is usable standalone, outside the HTTP layer.
func PlanTrip(city string, days int, interests, weather string) string {
	if city == "" {
		return msgCityRequired
	}
	if days < MinDays {
		return msgDaysPositive
	}
	if days > MaxDays {
		return msgDaysTooMany
	}

	plan := buildPlan(city, days, interests, weather)
	return Render(plan)
}

// PlanTripRaw is PlanTrip for callers that hold days as text. A value that
// does not parse as an integer yields an explanatory message, not an error.
func PlanTripRaw(city, days, interests, weather string) string {
	if city == "" {
		return msgCityRequired
	}

	n, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return msgDaysNotInt
	}
	return PlanTrip(city, n, interests, weather)
}

// buildPlan assembles the typed itinerary: classify weather, build the pool,
// derive the interest hint, then pick one activity per slot per day.
func buildPlan(city string, days int, interests, weather string) Plan {
	class := ClassifyWeather(weather)
	pool := BuildActivityPool(city)
	hint := InterestHint(interests)

	// The pool always defines all three classes; the fallback is defensive.
	buckets, ok := pool[class]
	if !ok {
		buckets = pool[WeatherMixed]
	}

	mornings := buckets[TimeMorning]
	afternoons := buckets[TimeAfternoon]
	evenings := buckets[TimeEvening]

	entries := make([]DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		// Cyclic selection: day k picks index (k-1) mod bucket size, so the
		// candidates repeat with full coverage as days grows past pool size.
		entries = append(entries, DayPlan{
			Day:       day,
			Morning:   mornings[(day-1)%len(mornings)],
			Afternoon: afternoons[(day-1)%len(afternoons)],
			Evening:   evenings[(day-1)%len(evenings)],
		})
	}

	return Plan{
		City:      NormalizeCity(city),
		Days:      days,
		Interests: interests,
		Weather:   weather,
		Hint:      hint,
		Entries:   entries,
	}
}

// Render serializes a plan to the exact text shown to end users. Whitespace
// and line ordering are part of the contract.
func Render(plan Plan) string {
	lines := make([]string, 0, 5+5*len(plan.Entries))

	lines = append(lines, fmt.Sprintf("Reiseplan für %s (%d Tage)", plan.City, plan.Days))
	if plan.Interests != "" {
		lines = append(lines, "Interessen: "+strings.TrimSpace(plan.Interests))
	}
	if plan.Weather != "" {
		lines = append(lines, "Ausgegangene Wetterlage: "+strings.TrimSpace(plan.Weather))
	}
	if plan.Hint != "" {
		lines = append(lines, plan.Hint)
	}
	lines = append(lines, "")

	for _, entry := range plan.Entries {
		lines = append(lines,
			fmt.Sprintf("Tag %d", entry.Day),
			"  Morgen: "+entry.Morning,
			"  Nachmittag: "+entry.Afternoon,
			"  Abend: "+entry.Evening,
			"",
		)
	}

	return strings.Join(lines, "\n")
}
