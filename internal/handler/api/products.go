package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/handler"
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/telemetry"
	"github.com/dukerupert/wardrobe/internal/weather"
)

// imageFormField is the multipart field carrying an uploaded image.
const imageFormField = "image"

// ProductHandler handles /api/v1/products, its items, category assignments
// and images.
type ProductHandler struct {
	products domain.ProductService
	images   domain.ImageService
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products domain.ProductService, images domain.ImageService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		images:   images,
		logger:   logger,
	}
}

// =============================================================================
// Catalog reads
// =============================================================================

// List handles GET /api/v1/products?page=&size=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := handler.QueryPage(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	products, err := h.products.ListProducts(r.Context(), page)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, "Retrieved list of products", map[string]any{
		"products": newProductResponses(products),
	})
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Retrieved product by id: %d", id), map[string]any{
		"product": newProductResponse(*product),
	})
}

// MatchToWeather handles GET /api/v1/products/match-to-weather?city=&country=&page=&size=
func (h *ProductHandler) MatchToWeather(w http.ResponseWriter, r *http.Request) {
	city, err := handler.QueryRequired(r, "city")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	country, err := handler.QueryRequired(r, "country")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	page, err := handler.QueryPage(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	match, err := h.products.MatchToWeather(r.Context(), city, country, page)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.WeatherMatches.WithLabelValues(string(match.Season)).Inc()
	}

	handler.OK(w, r, "Retrieved list of products matched to actual weather", map[string]any{
		"temperature": weather.FormatCelsius(match.Celsius),
		"products":    newProductResponses(match.Products),
	})
}

// =============================================================================
// Catalog writes
// =============================================================================

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductsCreated.WithLabelValues(defaultImageLabel(product.ImageURL)).Inc()
	}

	handler.Created(w, r, "Created new product", map[string]any{
		"product": newProductResponse(*product),
	})
}

// Update handles PUT /api/v1/products
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.ID < 1 {
		handler.ErrorResponse(w, r, domain.NewValidationError("product.update", "id", "Cannot be empty"))
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, "Updated product", map[string]any{
		"product": newProductResponse(*product),
	})
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Deleted product with id: %d", id), map[string]any{"is_deleted": true})
}

// =============================================================================
// Items
// =============================================================================

// AddItem handles POST /api/v1/products/items/{productId}
func (h *ProductHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "productId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req itemRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	item, err := h.products.AddItem(r.Context(), productID, req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.Created(w, r, "Added new item", map[string]any{"item": newItemResponse(item)})
}

// UpdateItem handles PUT /api/v1/products/items
func (h *ProductHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := handler.DecodeAndValidate(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.ID < 1 {
		handler.ErrorResponse(w, r, domain.NewValidationError("item.update", "id", "Cannot be empty"))
		return
	}

	item, err := h.products.UpdateItem(r.Context(), req.toDomain())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, "Updated item", map[string]any{"item": newItemResponse(item)})
}

// DeleteItem handles DELETE /api/v1/products/items/{itemId}
func (h *ProductHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "itemId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.products.DeleteItem(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Deleted item with id: %d", id), map[string]any{"is_deleted": true})
}

// =============================================================================
// Category assignment
// =============================================================================

// Assign handles PUT /api/v1/products/assign/{productId}/{categoryId}
func (h *ProductHandler) Assign(w http.ResponseWriter, r *http.Request) {
	productID, categoryID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	if err := h.products.AssignToCategory(r.Context(), productID, categoryID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r,
		fmt.Sprintf("Assigned product with id: %d to category with id: %d", productID, categoryID),
		map[string]any{"is_assigned": true},
	)
}

// Unassign handles PUT /api/v1/products/unassign/{productId}/{categoryId}
func (h *ProductHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	productID, categoryID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	if err := h.products.UnassignFromCategory(r.Context(), productID, categoryID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r,
		fmt.Sprintf("Unassigned product with id: %d from category with id: %d", productID, categoryID),
		map[string]any{"is_unassigned": true},
	)
}

func assignmentIDs(w http.ResponseWriter, r *http.Request) (productID, categoryID int64, ok bool) {
	productID, err := handler.PathID(r, "productId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return 0, 0, false
	}
	categoryID, err = handler.PathID(r, "categoryId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return 0, 0, false
	}
	return productID, categoryID, true
}

// =============================================================================
// Images
// =============================================================================

// UploadImage handles POST /api/v1/products/upload/{productId}
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "productId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		handler.BadRequestResponse(w, r, "Required part image is missing")
		return
	}
	defer file.Close()

	uploaded, err := h.images.UploadImage(r.Context(), productID, file)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result := "stored"
	if !uploaded {
		result = "storage_failed"
		middleware.GetLogger(r.Context(), h.logger).Warn("image upload not stored", "product_id", productID)
	}
	if telemetry.Business != nil {
		telemetry.Business.ImageUploads.WithLabelValues(result).Inc()
	}

	handler.OK(w, r, fmt.Sprintf("Uploaded image for product with id: %d", productID), map[string]any{
		"is_uploaded": uploaded,
	})
}

// DeleteImage handles DELETE /api/v1/products/delete/image/{productId}
func (h *ProductHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "productId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	deleted, err := h.images.DeleteImage(r.Context(), productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, r, fmt.Sprintf("Deleted image for product with id: %d", productID), map[string]any{
		"is_deleted": deleted,
	})
}

// Image handles GET /api/v1/products/image/{id} and serves raw PNG bytes.
func (h *ProductHandler) Image(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	data, err := h.images.ReadImage(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// defaultImageLabel names the default image a new product received.
func defaultImageLabel(url *string) string {
	if url == nil {
		return "none"
	}
	switch *url {
	case domain.TShirtImageURL:
		return "t-shirt"
	case domain.TrousersImageURL:
		return "trousers"
	case domain.HoodieImageURL:
		return "hoodie"
	case domain.CoatImageURL:
		return "coat"
	default:
		return "other"
	}
}
