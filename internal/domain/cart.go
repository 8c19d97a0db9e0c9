package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Cart is a user's pending selection. TotalValue always equals the sum of
// line amount times product price over its lines.
type Cart struct {
	ID         int64
	TotalValue decimal.Decimal
	Lines      []CartLine
}

// CartLine is one item in a cart. Amount is at least 1 while the line exists.
type CartLine struct {
	ID     int64
	Item   CartItemView
	Amount int32
}

// CartItemView is the item projection shown in a cart line.
type CartItemView struct {
	ID       int64
	Size     string
	Quantity int32
	Product  ProductSummary
}

// ShoppingService runs the cart and checkout engines for the principal's cart.
// Every mutating operation runs in one transaction holding the cart row lock.
type ShoppingService interface {
	ViewCart(ctx context.Context, p Principal) (*Cart, error)
	AddCartItem(ctx context.Context, p Principal, itemID int64, amount int32) error
	RemoveCartItem(ctx context.Context, p Principal, itemID int64, amount int32) error

	// Checkout turns the cart into an order, decrements stock and empties
	// the cart. Nothing changes when any step fails.
	Checkout(ctx context.Context, p Principal) (*Order, error)

	ListOrders(ctx context.Context, p Principal) ([]Order, error)
}
