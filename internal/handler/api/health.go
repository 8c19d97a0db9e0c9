package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dukerupert/wardrobe/internal/handler"
	"github.com/dukerupert/wardrobe/internal/middleware"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /health
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		middleware.GetLogger(r.Context()).Error("health check failed", "error", err)
		handler.Respond(w, r, http.StatusServiceUnavailable, "Database unavailable", map[string]any{
			"database": "down",
		})
		return
	}

	handler.OK(w, r, "Service is healthy", map[string]any{"database": "up"})
}
