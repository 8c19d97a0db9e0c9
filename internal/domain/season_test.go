package domain

import (
	"math"
	"testing"
)

func TestSeasonForTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		want    WeatherSeason
	}{
		{-40, SeasonWinter},
		{3.2, SeasonWinter},
		{5.0, SeasonWinter},
		{5.0001, SeasonAutumn},
		{15.0, SeasonAutumn},
		{15.0001, SeasonSpring},
		{23.0, SeasonSpring},
		{23.0001, SeasonSummer},
		{24, SeasonSummer},
		{math.Inf(1), SeasonSummer},
		{math.Inf(-1), SeasonWinter},
	}

	for _, tt := range tests {
		if got := SeasonForTemperature(tt.celsius); got != tt.want {
			t.Errorf("SeasonForTemperature(%v) = %s, want %s", tt.celsius, got, tt.want)
		}
	}
}

func TestSeasonForTemperature_Monotone(t *testing.T) {
	rank := map[WeatherSeason]int{
		SeasonWinter: 0,
		SeasonAutumn: 1,
		SeasonSpring: 2,
		SeasonSummer: 3,
	}

	prev := rank[SeasonForTemperature(-50)]
	for c := -50.0; c <= 50.0; c += 0.25 {
		r, ok := rank[SeasonForTemperature(c)]
		if !ok {
			t.Fatalf("SeasonForTemperature(%v) returned an unranked season", c)
		}
		if r < prev {
			t.Fatalf("season got warmer-to-colder at %v", c)
		}
		prev = r
	}
}

func TestParseWeatherSeason(t *testing.T) {
	tests := []struct {
		in     string
		want   WeatherSeason
		wantOK bool
	}{
		{"", SeasonNone, true},
		{"NONE", SeasonNone, true},
		{"WINTER", SeasonWinter, true},
		{"SUMMER", SeasonSummer, true},
		{"summer", "", false},
		{"MONSOON", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseWeatherSeason(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseWeatherSeason(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
