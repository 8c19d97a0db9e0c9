package routes

import (
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/router"
)

// RegisterUserRoutes registers /api/v1/users and /api/v1/login.
//
// Registration and login are public and share the strict rate limiter.
// Reading, updating and deleting a single user only require a principal;
// the self-or-admin decision is made by the user service.
func RegisterUserRoutes(r *router.Router, deps UserDeps) {
	h := deps.Handler
	strict := r.Group(middleware.RateLimit(middleware.StrictRateLimiterConfig()))

	strict.Post("/api/v1/login", h.Login)

	strict.Route("/api/v1/users", func(r *router.Router) {
		r.Post("", h.Register)
	})

	r.Route("/api/v1/users", func(r *router.Router) {
		r.Get("", h.List, middleware.RequireAdmin)

		account := r.Group(middleware.RequireAuth)
		account.Get("/{id}", h.Get)
		account.Put("", h.Update)
		account.Delete("/{id}", h.Delete)
	})
}
