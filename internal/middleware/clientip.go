package middleware

import (
	"context"
	"net/http"
)

// ClientIPContextKey holds the resolved client address.
const ClientIPContextKey contextKey = "client_ip"

// WithClientIP resolves the caller's address once per request so the rate
// limiter and the request logger agree on it. Proxy headers are trusted, so
// the service must only be reachable through the proxy that sets them.
func WithClientIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ClientIPContextKey, GetClientIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIPFromContext returns the address stored by WithClientIP, or "".
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPContextKey).(string); ok {
		return ip
	}
	return ""
}

// clientKey is the default rate limit key.
func clientKey(r *http.Request) string {
	if ip := GetClientIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return GetClientIP(r)
}
