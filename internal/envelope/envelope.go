// Package envelope writes the JSON body shared by every API response and maps
// domain error codes onto HTTP statuses. Both the handlers and the middleware
// answer through it.
package envelope

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/wardrobe/internal/domain"
)

// TimestampLayout renders local time with no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Envelope is the body of every JSON response.
type Envelope struct {
	Timestamp  string         `json:"timestamp"`
	Status     string         `json:"status"`
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
}

// Now is replaced in tests.
var Now = time.Now

// New builds the envelope for status.
func New(status int, message string, data map[string]any) Envelope {
	return Envelope{
		Timestamp:  Now().Format(TimestampLayout),
		Status:     StatusName(status),
		StatusCode: status,
		Message:    message,
		Data:       data,
	}
}

// Write sends the envelope with status as the response code.
func Write(w http.ResponseWriter, status int, message string, data map[string]any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(New(status, message, data))
}

// StatusName turns 404 into NOT_FOUND, 201 into CREATED and so on.
func StatusName(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(text))
}

// StatusFor maps a domain error code to its HTTP status. Conflicts and
// permission failures answer 400 like any other rejected request.
func StatusFor(code string) int {
	switch code {
	case domain.EINVALID, domain.ECONFLICT, domain.EFORBIDDEN:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EGONE:
		return http.StatusGone
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.ENOTIMPL:
		return http.StatusNotImplemented
	case domain.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
