package planner

import "strings"

// Keyword sets for weather classification. Bad keywords are checked first so
// that text containing both kinds (e.g. "sonnig aber regen") classifies as bad.
var (
	badWeatherKeywords  = []string{"regen", "schlecht", "bewölkt"}
	goodWeatherKeywords = []string{"sonnig", "warm", "heiss"}
)

// ClassifyWeather maps a free-text weather description to a WeatherClass via
// case-insensitive substring matching. Empty or unrecognized input yields
// WeatherMixed.
func ClassifyWeather(weather string) WeatherClass {
	if weather == "" {
		return WeatherMixed
	}

	w := strings.ToLower(weather)
	for _, keyword := range badWeatherKeywords {
		if strings.Contains(w, keyword) {
			return WeatherBad
		}
	}
	for _, keyword := range goodWeatherKeywords {
		if strings.Contains(w, keyword) {
			return WeatherGood
		}
	}
	return WeatherMixed
}
