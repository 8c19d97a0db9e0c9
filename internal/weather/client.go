// Package weather resolves a place to its current temperature using the
// positionstack geocoding API and the OpenWeatherMap current weather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/wardrobe/internal/telemetry"
)

const defaultTimeout = 10 * time.Second

// maxBodySize caps upstream responses. Both APIs answer with a few KB.
const maxBodySize = 1 << 20

// errUpstreamStatus marks a non-200 answer. Callers map it to a domain error.
type errUpstreamStatus struct {
	status int
	body   string
}

func (e *errUpstreamStatus) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.status, e.body)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &telemetry.HTTPTransport{Transport: http.DefaultTransport},
	}
}

// getJSON issues a GET to base with query and decodes the body into out.
func getJSON(ctx context.Context, client *http.Client, base string, query url.Values, out any) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid upstream url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errUpstreamStatus{status: resp.StatusCode, body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
