package routes

import (
	"net/http"

	"github.com/dukerupert/wardrobe/internal/handler/api"
)

// UserDeps contains dependencies for user and login routes
type UserDeps struct {
	Handler *api.UserHandler
}

// CatalogDeps contains dependencies for category and product routes
type CatalogDeps struct {
	CategoryHandler *api.CategoryHandler
	ProductHandler  *api.ProductHandler
}

// ShoppingDeps contains dependencies for cart and order routes
type ShoppingDeps struct {
	Handler *api.ShoppingHandler
}

// OpsDeps contains dependencies for operational endpoints
type OpsDeps struct {
	HealthHandler  http.Handler
	MetricsHandler http.Handler
}
