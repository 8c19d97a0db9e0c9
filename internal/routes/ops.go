package routes

import (
	"net/http"

	"github.com/dukerupert/wardrobe/internal/handler"
	"github.com/dukerupert/wardrobe/internal/router"
)

// RegisterOpsRoutes registers health and metrics endpoints and the JSON
// catch-all for unknown paths.
func RegisterOpsRoutes(r *router.Router, deps OpsDeps) {
	r.Handle(http.MethodGet, "/health", deps.HealthHandler)
	if deps.MetricsHandler != nil {
		r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, "No handler found for "+r.Method+" "+r.URL.Path)
	})
}
