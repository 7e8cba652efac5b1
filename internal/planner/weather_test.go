package planner_test

import (
	"testing"

	"github.com/reiseplaner/reiseplaner/internal/planner"
)

func TestClassifyWeather(t *testing.T) {
	tests := []struct {
		name    string
		weather string
		want    planner.WeatherClass
	}{
		{name: "sunny", weather: "sonnig", want: planner.WeatherGood},
		{name: "warm", weather: "warm und trocken", want: planner.WeatherGood},
		{name: "hot", weather: "sehr heiss", want: planner.WeatherGood},
		{name: "rain", weather: "regen", want: planner.WeatherBad},
		{name: "overcast", weather: "stark bewölkt", want: planner.WeatherBad},
		{name: "poor", weather: "schlechtes Wetter", want: planner.WeatherBad},
		{name: "case insensitive", weather: "SONNIG", want: planner.WeatherGood},
		{name: "substring match", weather: "leichter Regenschauer", want: planner.WeatherBad},
		{name: "empty", weather: "", want: planner.WeatherMixed},
		{name: "unrecognized", weather: "neblig", want: planner.WeatherMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.ClassifyWeather(tt.weather)
			if got != tt.want {
				t.Errorf("ClassifyWeather(%q) = %q, want %q", tt.weather, got, tt.want)
			}
		})
	}
}

func TestClassifyWeather_BadTakesPriority(t *testing.T) {
	// Text containing both kinds of keywords classifies as bad.
	got := planner.ClassifyWeather("sonnig aber regen")
	if got != planner.WeatherBad {
		t.Errorf("ClassifyWeather(%q) = %q, want %q", "sonnig aber regen", got, planner.WeatherBad)
	}
}
