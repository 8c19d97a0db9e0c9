package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukerupert/wardrobe/internal/domain"
)

func TestShoppingHandler_Cart(t *testing.T) {
	shopping := &mockShoppingService{
		viewCartFunc: func(ctx context.Context, p domain.Principal) (*domain.Cart, error) {
			assert.Equal(t, userPrincipal.Email, p.Email)
			return &domain.Cart{
				ID:         3,
				TotalValue: decimal.RequireFromString("62.5"),
				Lines: []domain.CartLine{{
					ID:     11,
					Amount: 5,
					Item: domain.CartItemView{
						ID:       7,
						Size:     "M",
						Quantity: 10,
						Product:  domain.ProductSummary{ID: 2, Name: "basic black t-shirt", Price: decimal.RequireFromString("12.50")},
					},
				}},
			}, nil
		},
	}
	h := NewShoppingHandler(shopping)

	rec := httptest.NewRecorder()
	h.Cart(rec, newRequest(http.MethodGet, "/api/v1/shopping", "", userPrincipal))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Retrieved view of cart", resp.Message)
	assert.JSONEq(t, `{
		"id": 3,
		"totalValue": 62.50,
		"cartItems": [{
			"id": 11,
			"amount": 5,
			"item": {"id": 7, "size": "M", "quantity": 10,
				"product": {"id": 2, "name": "basic black t-shirt", "price": 12.50}}
		}]
	}`, string(resp.Data["cart"]))
}

func TestShoppingHandler_Add(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		serviceErr  error
		wantStatus  int
		wantMessage string
		wantAmount  int32
	}{
		{
			name:        "adds",
			target:      "/api/v1/shopping/7?amount=3",
			wantStatus:  http.StatusOK,
			wantMessage: "Added item to cart",
			wantAmount:  3,
		},
		{
			name:        "exceeds stock",
			target:      "/api/v1/shopping/7?amount=2",
			serviceErr:  domain.Invalid("cart.add", domain.MsgOrderedStockExceeds),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Ordered amount must not exceed stock quantity of item",
			wantAmount:  2,
		},
		{
			name:        "zero amount reaches the cart rule",
			target:      "/api/v1/shopping/7?amount=0",
			serviceErr:  domain.Invalid("cart.add", domain.MsgOrderedAmountMin),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Ordered amount must be minimum 1",
		},
		{
			name:        "missing amount",
			target:      "/api/v1/shopping/7",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Required parameter amount is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotItem int64
			var gotAmount int32
			shopping := &mockShoppingService{
				addFunc: func(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
					gotItem, gotAmount = itemID, amount
					return tt.serviceErr
				},
			}
			h := NewShoppingHandler(shopping)

			rec := httptest.NewRecorder()
			h.Add(rec, newRequest(http.MethodPut, tt.target, "", userPrincipal, "itemId", "7"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeResponse(t, rec).Message)
			if tt.wantAmount > 0 {
				assert.Equal(t, int64(7), gotItem)
				assert.Equal(t, tt.wantAmount, gotAmount)
			}
		})
	}
}

func TestShoppingHandler_Remove_NotInCart(t *testing.T) {
	shopping := &mockShoppingService{
		removeFunc: func(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
			return domain.ErrItemNotInCart(itemID)
		},
	}
	h := NewShoppingHandler(shopping)

	rec := httptest.NewRecorder()
	h.Remove(rec, newRequest(http.MethodDelete, "/api/v1/shopping/9?amount=1", "", userPrincipal, "itemId", "9"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item with id: 9 not found in cart", decodeResponse(t, rec).Message)
}

func TestShoppingHandler_Checkout(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK, wantMessage: "Checkout cart"},
		{
			name:        "stock changed",
			err:         domain.Invalid("checkout", domain.MsgOrderedAmountExceeds),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Ordered amount must not exceed quantity of item",
		},
		{
			name:        "database failure",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shopping := &mockShoppingService{
				checkoutFunc: func(ctx context.Context, p domain.Principal) (*domain.Order, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Order{ID: 1, TotalValue: decimal.RequireFromString("37.50")}, nil
				},
			}
			h := NewShoppingHandler(shopping)

			rec := httptest.NewRecorder()
			h.Checkout(rec, newRequest(http.MethodPost, "/api/v1/shopping/checkout", "", userPrincipal))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeResponse(t, rec).Message)
		})
	}
}

func TestShoppingHandler_Orders(t *testing.T) {
	itemID := int64(7)
	productID := int64(2)
	shopping := &mockShoppingService{
		listOrdersFunc: func(ctx context.Context, p domain.Principal) ([]domain.Order, error) {
			return []domain.Order{
				{
					ID:          4,
					TotalValue:  decimal.RequireFromString("37.5"),
					DateOfOrder: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
					Lines: []domain.OrderLine{
						{ID: 1, ItemID: &itemID, ProductID: &productID, Size: "M", ProductName: "tee", UnitPrice: decimal.RequireFromString("12.5"), Amount: 3},
						{ID: 2, Size: "L", ProductName: "retired hoodie", UnitPrice: decimal.RequireFromString("0"), Amount: 1},
					},
				},
			}, nil
		},
	}
	h := NewShoppingHandler(shopping)

	rec := httptest.NewRecorder()
	h.Orders(rec, newRequest(http.MethodGet, "/api/v1/shopping/orders", "", userPrincipal))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Retrieved list of orders", resp.Message)
	assert.JSONEq(t, `[{
		"id": 4,
		"totalValue": 37.50,
		"dateOfOrder": "2024-05-01 09:30",
		"orderItems": [
			{"id": 1, "amount": 3, "item": {"id": 7, "size": "M", "product": {"id": 2, "name": "tee", "price": 12.50}}},
			{"id": 2, "amount": 1, "item": {"id": null, "size": "L", "product": {"id": null, "name": "retired hoodie", "price": 0.00}}}
		]
	}]`, string(resp.Data["orders"]))
}
