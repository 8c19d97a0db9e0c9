package domain

import "context"

// Coordinates is a geocoded position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a place to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city, country string) (Coordinates, error)
}

// WeatherProvider reports the current temperature in Kelvin at a position.
type WeatherProvider interface {
	TemperatureKelvin(ctx context.Context, at Coordinates) (float64, error)
}

// Thermometer reports the current Celsius temperature of a place.
type Thermometer interface {
	TemperatureCelsius(ctx context.Context, city, country string) (float64, error)
}
