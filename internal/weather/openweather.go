package weather

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dukerupert/wardrobe/internal/domain"
)

// Provider implements domain.WeatherProvider with the OpenWeatherMap current
// weather API. Temperatures come back in Kelvin.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ domain.WeatherProvider = (*Provider)(nil)

type openWeatherResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

func NewProvider(baseURL, apiKey string, timeout time.Duration) *Provider {
	return &Provider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
	}
}

func (p *Provider) TemperatureKelvin(ctx context.Context, at domain.Coordinates) (float64, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	query.Set("appid", p.apiKey)

	var resp *openWeatherResponse
	if err := getJSON(ctx, p.client, p.baseURL, query, &resp); err != nil {
		var status *errUpstreamStatus
		if errors.As(err, &status) {
			return 0, domain.WrapError(err, domain.EINVALID, "weather.current", domain.MsgNoTemperatureAvailable)
		}
		return 0, domain.Internal(err, "weather.current", "weather request failed")
	}

	if resp == nil || resp.Main == nil || resp.Main.Temp == nil {
		return 0, domain.ErrNoTemperature
	}
	return *resp.Main.Temp, nil
}
