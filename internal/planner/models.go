// Package planner builds deterministic multi-day trip itineraries from a city
// name, trip duration, free-text interests and a free-text weather description.
// All functions are pure: no I/O, no shared state, no external providers.
package planner

// WeatherClass is the coarse weather classification used to pick an
// activity bucket. Class names follow the German content set.
type WeatherClass string

const (
	WeatherGood  WeatherClass = "gut"
	WeatherBad   WeatherClass = "schlecht"
	WeatherMixed WeatherClass = "gemischt"
)

// TimeOfDay identifies one of the three activity slots per day.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morgen"
	TimeAfternoon TimeOfDay = "nachmittag"
	TimeEvening   TimeOfDay = "abend"
)

// ActivityPool maps a weather class to ordered candidate activities per time
// of day. It is built fresh per request from the normalized city name.
type ActivityPool map[WeatherClass]map[TimeOfDay][]string

// DayPlan holds the three chosen activities for a single day.
type DayPlan struct {
	Day       int
	Morning   string
	Afternoon string
	Evening   string
}

// Plan is the assembled itinerary before rendering.
type Plan struct {
	City      string
	Days      int
	Interests string
	Weather   string
	Hint      string
	Entries   []DayPlan
}
