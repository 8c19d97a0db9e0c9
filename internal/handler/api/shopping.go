package api

import (
	"net/http"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/handler"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

// ShoppingHandler handles /api/v1/shopping for the authenticated user.
type ShoppingHandler struct {
	shopping domain.ShoppingService
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(shopping domain.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

// Cart handles GET /api/v1/shopping
func (h *ShoppingHandler) Cart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.shopping.ViewCart(r.Context(), *domain.MustPrincipal(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		value, _ := cart.TotalValue.Float64()
		telemetry.Business.CartValue.WithLabelValues().Observe(value)
	}

	handler.OK(w, r, "Retrieved view of cart", map[string]any{"cart": newCartResponse(cart)})
}

// Add handles PUT /api/v1/shopping/{itemId}?amount=
func (h *ShoppingHandler) Add(w http.ResponseWriter, r *http.Request) {
	itemID, err := handler.PathID(r, "itemId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	amount, err := handler.QueryAmount(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.shopping.AddCartItem(r.Context(), *domain.MustPrincipal(r.Context()), itemID, amount); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartItemsAdded.WithLabelValues().Add(float64(amount))
	}

	handler.OK(w, r, "Added item to cart", map[string]any{"is_added": true})
}

// Remove handles DELETE /api/v1/shopping/{itemId}?amount=
func (h *ShoppingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, err := handler.PathID(r, "itemId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	amount, err := handler.QueryAmount(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.shopping.RemoveCartItem(r.Context(), *domain.MustPrincipal(r.Context()), itemID, amount); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartItemsRemoved.WithLabelValues().Add(float64(amount))
	}

	handler.OK(w, r, "Deleted item from cart", map[string]any{"is_deleted": true})
}

// Checkout handles POST /api/v1/shopping/checkout
func (h *ShoppingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.shopping.Checkout(r.Context(), *domain.MustPrincipal(r.Context()))
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.CheckoutsFailed.WithLabelValues(domain.ErrorCode(err)).Inc()
		}
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		value, _ := order.TotalValue.Float64()
		telemetry.Business.CheckoutsCompleted.WithLabelValues().Inc()
		telemetry.Business.OrderValue.WithLabelValues().Observe(value)
		telemetry.Business.OrderItemCount.WithLabelValues().Observe(float64(len(order.Lines)))
		telemetry.Business.RevenueCollected.WithLabelValues().Add(value)
	}

	handler.OK(w, r, "Checkout cart", map[string]any{"is_checkout": true})
}

// Orders handles GET /api/v1/shopping/orders
func (h *ShoppingHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.shopping.ListOrders(r.Context(), *domain.MustPrincipal(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	handler.OK(w, r, "Retrieved list of orders", map[string]any{"orders": out})
}
