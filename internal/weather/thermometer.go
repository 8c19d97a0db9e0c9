package weather

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

var absoluteZero = decimal.RequireFromString("273.15")

// Thermometer chains a geocoder and a weather provider into a Celsius reading.
type Thermometer struct {
	geocoder domain.Geocoder
	provider domain.WeatherProvider
	logger   *slog.Logger
}

var _ domain.Thermometer = (*Thermometer)(nil)

func NewThermometer(geocoder domain.Geocoder, provider domain.WeatherProvider, logger *slog.Logger) *Thermometer {
	return &Thermometer{
		geocoder: geocoder,
		provider: provider,
		logger:   logger,
	}
}

// TemperatureCelsius geocodes the place and converts the current Kelvin
// reading there. The subtraction runs in decimal so 283.15 K reads as 10 °C.
func (t *Thermometer) TemperatureCelsius(ctx context.Context, city, country string) (float64, error) {
	at, err := t.geocoder.Geocode(ctx, city, country)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.WeatherLookups.WithLabelValues("geocode_failed").Inc()
		}
		t.logger.Warn("geocoding failed", "city", city, "country", country, "error", err)
		return 0, err
	}

	kelvin, err := t.provider.TemperatureKelvin(ctx, at)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.WeatherLookups.WithLabelValues("weather_failed").Inc()
		}
		t.logger.Warn("weather lookup failed",
			"city", city,
			"country", country,
			"latitude", at.Latitude,
			"longitude", at.Longitude,
			"error", err,
		)
		return 0, err
	}

	if telemetry.Business != nil {
		telemetry.Business.WeatherLookups.WithLabelValues("ok").Inc()
	}
	return KelvinToCelsius(kelvin), nil
}

func KelvinToCelsius(kelvin float64) float64 {
	return decimal.NewFromFloat(kelvin).Sub(absoluteZero).InexactFloat64()
}

// FormatCelsius renders a temperature with two decimals, truncated toward
// zero: -3.456 becomes "-3.45".
func FormatCelsius(celsius float64) string {
	return decimal.NewFromFloat(celsius).Truncate(2).StringFixed(2)
}
