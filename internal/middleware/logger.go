package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dukerupert/wardrobe/internal/domain"
)

// LoggerContextKey is the context key of the request-scoped logger.
const LoggerContextKey contextKey = "logger"

// WithRequestLogger stores a logger carrying request_id, method, path,
// client_ip and the caller's email (when authenticated) in the context.
// Place it after RequestID, WithClientIP and WithPrincipal.
func WithRequestLogger(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if id := GetRequestID(ctx); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			if ip := GetClientIPFromContext(ctx); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			if p := domain.PrincipalFromContext(ctx); p != nil {
				attrs = append(attrs, slog.String("user", p.Email))
			}

			ctx = context.WithValue(ctx, LoggerContextKey, baseLogger.With(attrs...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLogger returns the request-scoped logger, else the first non-nil
// fallback, else slog.Default().
func GetLogger(ctx context.Context, fallback ...*slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*slog.Logger); ok {
		return logger
	}
	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0]
	}
	return slog.Default()
}
