package domain

// Upper bounds (inclusive, Celsius) of the cold seasons.
const (
	WinterMaxCelsius = 5.0
	AutumnMaxCelsius = 15.0
	SpringMaxCelsius = 23.0
)

// SeasonForTemperature buckets a Celsius temperature into the season whose
// clothing suits it. It never returns SeasonNone.
func SeasonForTemperature(celsius float64) WeatherSeason {
	switch {
	case celsius <= WinterMaxCelsius:
		return SeasonWinter
	case celsius <= AutumnMaxCelsius:
		return SeasonAutumn
	case celsius <= SpringMaxCelsius:
		return SeasonSpring
	default:
		return SeasonSummer
	}
}
