// Package middleware provides the HTTP middleware stack of the API.
package middleware

import (
	"net/http"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/envelope"
)

var (
	errTooManyRequests = domain.Errorf(domain.ERATELIMIT, "", "Too many requests")
	errBodyTooLarge    = domain.Errorf(domain.ETOOLARGE, "", "Request body too large")
	errRequestTimeout  = domain.Errorf(domain.EUNAVAILABLE, "", "Request timeout")
)

// reject answers a request the middleware refused to pass on. Rejections
// are expected traffic and log at info.
func reject(w http.ResponseWriter, r *http.Request, err error) {
	status := envelope.StatusFor(domain.ErrorCode(err))

	attrs := []any{
		"error", err.Error(),
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
	}
	if id := GetRequestID(r.Context()); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	GetLogger(r.Context()).Info("request rejected", attrs...)

	_ = envelope.Write(w, status, domain.ErrorMessage(err), nil)
}
