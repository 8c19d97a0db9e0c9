package routes

import (
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/router"
)

// RegisterShoppingRoutes registers the cart, checkout and order history
// routes under /api/v1/shopping. All of them require the USER role.
func RegisterShoppingRoutes(r *router.Router, deps ShoppingDeps) {
	h := deps.Handler

	r.Group(middleware.RequireRole(domain.RoleUser)).Route("/api/v1/shopping", func(r *router.Router) {
		r.Get("", h.Cart)
		r.Put("/{itemId}", h.Add)
		r.Delete("/{itemId}", h.Remove)
		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.Orders)
	})
}
