package routes

import (
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/router"
)

// RegisterCatalogRoutes registers /api/v1/categories and /api/v1/products.
// Reads are public, every write requires the ADMIN role.
func RegisterCatalogRoutes(r *router.Router, deps CatalogDeps) {
	categories := deps.CategoryHandler
	products := deps.ProductHandler

	r.Route("/api/v1/categories", func(r *router.Router) {
		r.Get("", categories.List)
		r.Get("/{name}", categories.Get)
		r.Get("/products/{name}", categories.Products)

		admin := r.Group(middleware.RequireAdmin)
		admin.Post("", categories.Create)
		admin.Put("", categories.Update)
		admin.Delete("/{id}", categories.Delete)
	})

	r.Route("/api/v1/products", func(r *router.Router) {
		r.Get("", products.List)
		r.Get("/{id}", products.Get)
		r.Get("/image/{id}", products.Image)
		// Geocoding plus the weather lookup can be slow
		r.Get("/match-to-weather", products.MatchToWeather, middleware.Timeout(middleware.WeatherTimeout))

		admin := r.Group(middleware.RequireAdmin)
		admin.Post("", products.Create)
		admin.Put("", products.Update)
		admin.Delete("/{id}", products.Delete)

		// Items
		admin.Post("/items/{productId}", products.AddItem)
		admin.Put("/items", products.UpdateItem)
		admin.Delete("/items/{itemId}", products.DeleteItem)

		// Category assignment
		admin.Put("/assign/{productId}/{categoryId}", products.Assign)
		admin.Put("/unassign/{productId}/{categoryId}", products.Unassign)

		// Images
		admin.Post("/upload/{productId}", products.UploadImage, middleware.MaxBodySize(middleware.ImageMaxBodySize))
		admin.Delete("/delete/image/{productId}", products.DeleteImage)
	})
}
