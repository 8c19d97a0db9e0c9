package api

import (
	"fmt"
	"net/http"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/handler"
)

// CategoryHandler handles /api/v1/categories.
type CategoryHandler struct {
	categories domain.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories domain.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	handler.OK(w, r, "Retrieved list of categories", map[string]any{"categories": out})
}

// Get handles GET /api/v1/categories/{name}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	category, err := h.categories.GetCategoryByName(r.Context(), name)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := newCategoryResponse(*category)
	if resp.Products == nil {
		resp.Products = []productRead{}
	}
	handler.OK(w, r, fmt.Sprintf("Retrieved category with name: %s", name), map[string]any{
		"category": resp,
	})
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	category, err := h.categories.CreateCategory(r.Context(), req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.Created(w, r, "Created new category", map[string]any{
		"category": newCategoryResponse(*category),
	})
}

// Update handles PUT /api/v1/categories
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.ID < 1 {
		handler.ErrorResponse(w, r, domain.NewValidationError("category.update", "id", "Cannot be empty"))
		return
	}

	category, err := h.categories.UpdateCategory(r.Context(), req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, "Updated category", map[string]any{
		"category": newCategoryResponse(*category),
	})
}

// Delete handles DELETE /api/v1/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Deleted category with id: %d", id), map[string]any{"is_deleted": true})
}

// Products handles GET /api/v1/categories/products/{name}
func (h *CategoryHandler) Products(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	products, err := h.categories.ListCategoryProducts(r.Context(), name)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Retrieved list of products for category: %s", name), map[string]any{
		"products": newProductReads(products),
	})
}
