package weather

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/wardrobe/internal/domain"
)

// Geocoder implements domain.Geocoder with the positionstack forward API.
type Geocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ domain.Geocoder = (*Geocoder)(nil)

type positionstackResponse struct {
	Data []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"data"`
}

func NewGeocoder(baseURL, apiKey string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
	}
}

// Geocode returns the first match for "<city> <country>". A null body or an
// empty result list means the place is unknown.
func (g *Geocoder) Geocode(ctx context.Context, city, country string) (domain.Coordinates, error) {
	query := url.Values{}
	query.Set("access_key", g.apiKey)
	query.Set("query", city+" "+country)

	var resp *positionstackResponse
	if err := getJSON(ctx, g.client, g.baseURL, query, &resp); err != nil {
		var status *errUpstreamStatus
		if errors.As(err, &status) {
			return domain.Coordinates{}, domain.WrapError(err, domain.EINVALID, "weather.geocode",
				domain.ErrorMessage(domain.ErrLocationNotFound(city, country)))
		}
		return domain.Coordinates{}, domain.Internal(err, "weather.geocode", "geocoding request failed")
	}

	if resp == nil || len(resp.Data) == 0 {
		return domain.Coordinates{}, domain.ErrLocationNotFound(city, country)
	}

	first := resp.Data[0]
	return domain.Coordinates{Latitude: first.Latitude, Longitude: first.Longitude}, nil
}
