package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// ShoppingService implements domain.ShoppingService using PostgreSQL.
//
// Every mutation locks the caller's cart row first, so concurrent requests of
// one user are serialised. The cart total is recomputed from the surviving
// lines after each change.
type ShoppingService struct {
	repo  repository.Querier
	scope transaction.Scope
}

var _ domain.ShoppingService = (*ShoppingService)(nil)

func NewShoppingService(repo repository.Querier, scope transaction.Scope) *ShoppingService {
	return &ShoppingService{
		repo:  repo,
		scope: scope,
	}
}

// =============================================================================
// Cart
// =============================================================================

func (s *ShoppingService) ViewCart(ctx context.Context, p domain.Principal) (*domain.Cart, error) {
	user, err := resolveUser(ctx, s.repo, p)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.GetCartByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Internal(err, "cart.view", "failed to get cart")
		}
		if cart, err = s.repo.CreateCart(ctx, user.ID); err != nil {
			return nil, domain.Internal(err, "cart.view", "failed to create cart")
		}
	}

	lines, err := s.repo.ListCartLines(ctx, cart.ID)
	if err != nil {
		return nil, domain.Internal(err, "cart.view", "failed to list cart lines")
	}

	return mapCartToDomain(cart, lines), nil
}

// AddCartItem puts amount units of the item into the cart, merging with an
// existing line. The line never exceeds the item's stock.
func (s *ShoppingService) AddCartItem(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
	if amount < 1 {
		return domain.Invalid("cart.add", domain.MsgOrderedAmountMin)
	}

	return s.scope.Execute(ctx, func(ctx context.Context) error {
		cart, err := s.lockCart(ctx, p)
		if err != nil {
			return err
		}

		item, err := s.repo.GetItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrItemNotFound(itemID)
			}
			return domain.Internal(err, "cart.add", "failed to get item")
		}

		if amount > item.Quantity {
			return domain.Invalid("cart.add", domain.MsgOrderedAmountExceeds)
		}

		line, err := s.repo.GetCartItemByItem(ctx, repository.GetCartItemByItemParams{
			CartID: cart.ID,
			ItemID: itemID,
		})
		switch {
		case err == nil:
			if line.Amount+amount > item.Quantity {
				return domain.Invalid("cart.add", domain.MsgOrderedStockExceeds)
			}
			if err := s.repo.UpdateCartItemAmount(ctx, repository.UpdateCartItemAmountParams{
				ID:     line.ID,
				Amount: line.Amount + amount,
			}); err != nil {
				return domain.Internal(err, "cart.add", "failed to update cart line")
			}
		case errors.Is(err, pgx.ErrNoRows):
			if _, err := s.repo.CreateCartItem(ctx, repository.CreateCartItemParams{
				CartID: cart.ID,
				ItemID: itemID,
				Amount: amount,
			}); err != nil {
				return domain.Internal(err, "cart.add", "failed to create cart line")
			}
		default:
			return domain.Internal(err, "cart.add", "failed to get cart line")
		}

		_, err = s.refreshTotal(ctx, cart.ID)
		return err
	})
}

// RemoveCartItem takes amount units of the item out of the cart. A line
// reaching zero is deleted.
func (s *ShoppingService) RemoveCartItem(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
	if amount < 1 {
		return domain.Invalid("cart.remove", domain.MsgAmountToDeleteMin)
	}

	return s.scope.Execute(ctx, func(ctx context.Context) error {
		cart, err := s.lockCart(ctx, p)
		if err != nil {
			return err
		}

		line, err := s.repo.GetCartItemByItem(ctx, repository.GetCartItemByItemParams{
			CartID: cart.ID,
			ItemID: itemID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrItemNotInCart(itemID)
			}
			return domain.Internal(err, "cart.remove", "failed to get cart line")
		}

		if amount > line.Amount {
			return domain.Invalid("cart.remove", domain.MsgAmountToDeleteExceeds)
		}

		if amount == line.Amount {
			if err := s.repo.DeleteCartItem(ctx, line.ID); err != nil {
				return domain.Internal(err, "cart.remove", "failed to delete cart line")
			}
		} else {
			if err := s.repo.UpdateCartItemAmount(ctx, repository.UpdateCartItemAmountParams{
				ID:     line.ID,
				Amount: line.Amount - amount,
			}); err != nil {
				return domain.Internal(err, "cart.remove", "failed to update cart line")
			}
		}

		_, err = s.refreshTotal(ctx, cart.ID)
		return err
	})
}

// =============================================================================
// Checkout
// =============================================================================

// Checkout snapshots the cart into a new order, decrements stock and empties
// the cart in one transaction.
func (s *ShoppingService) Checkout(ctx context.Context, p domain.Principal) (*domain.Order, error) {
	return transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (*domain.Order, error) {
		cart, err := s.lockCart(ctx, p)
		if err != nil {
			return nil, err
		}

		if _, err := s.repo.LockCartItems(ctx, cart.ID); err != nil {
			return nil, domain.Internal(err, "checkout", "failed to lock items")
		}
		lines, err := s.repo.ListCartLines(ctx, cart.ID)
		if err != nil {
			return nil, domain.Internal(err, "checkout", "failed to list cart lines")
		}

		for _, l := range lines {
			if l.Amount > l.Quantity {
				return nil, domain.Invalid("checkout", domain.MsgOrderedAmountExceeds)
			}
		}

		order, err := s.repo.CreateOrder(ctx, repository.CreateOrderParams{
			UserID:     cart.UserID,
			TotalValue: cart.TotalValue,
		})
		if err != nil {
			return nil, domain.Internal(err, "checkout", "failed to create order")
		}

		orderItems := make([]repository.OrderItem, 0, len(lines))
		for _, l := range lines {
			n, err := s.repo.DecrementItemQuantity(ctx, repository.DecrementItemQuantityParams{
				ID:     l.ItemID,
				Amount: l.Amount,
			})
			if err != nil {
				return nil, domain.Internal(err, "checkout", "failed to decrement stock")
			}
			if n == 0 {
				return nil, domain.Invalid("checkout", domain.MsgOrderedAmountExceeds)
			}

			oi, err := s.repo.CreateOrderItem(ctx, repository.CreateOrderItemParams{
				OrderID:     order.ID,
				ItemID:      pgtype.Int8{Int64: l.ItemID, Valid: true},
				Amount:      l.Amount,
				Size:        l.Size,
				ProductID:   pgtype.Int8{Int64: l.ProductID, Valid: true},
				ProductName: l.ProductName,
				UnitPrice:   l.ProductPrice,
			})
			if err != nil {
				return nil, domain.Internal(err, "checkout", "failed to create order item")
			}
			orderItems = append(orderItems, oi)
		}

		if err := s.repo.ClearCartItems(ctx, cart.ID); err != nil {
			return nil, domain.Internal(err, "checkout", "failed to clear cart")
		}
		if err := s.repo.UpdateCartTotal(ctx, repository.UpdateCartTotalParams{
			ID:         cart.ID,
			TotalValue: decimal.Zero,
		}); err != nil {
			return nil, domain.Internal(err, "checkout", "failed to reset cart total")
		}

		result := mapOrderToDomain(order, orderItems)
		return &result, nil
	})
}

// ListOrders returns the caller's orders, oldest first.
func (s *ShoppingService) ListOrders(ctx context.Context, p domain.Principal) ([]domain.Order, error) {
	user, err := resolveUser(ctx, s.repo, p)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.Internal(err, "orders.list", "failed to list orders")
	}

	items, err := s.repo.ListOrderItemsByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.Internal(err, "orders.list", "failed to list order items")
	}
	byOrder := make(map[int64][]repository.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, mapOrderToDomain(o, byOrder[o.ID]))
	}
	return result, nil
}

// =============================================================================
// Helper Functions
// =============================================================================

// lockCart resolves the principal and locks its cart row for the rest of the
// transaction, creating the cart when it is missing.
func (s *ShoppingService) lockCart(ctx context.Context, p domain.Principal) (repository.Cart, error) {
	user, err := resolveUser(ctx, s.repo, p)
	if err != nil {
		return repository.Cart{}, err
	}

	cart, err := s.repo.GetCartByUserIDForUpdate(ctx, user.ID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return repository.Cart{}, domain.Internal(err, "cart.lock", "failed to lock cart")
	}

	cart, err = s.repo.CreateCart(ctx, user.ID)
	if err != nil {
		return repository.Cart{}, domain.Internal(err, "cart.lock", "failed to create cart")
	}
	return cart, nil
}

// refreshTotal stores the sum of line values as the cart total.
func (s *ShoppingService) refreshTotal(ctx context.Context, cartID int64) (decimal.Decimal, error) {
	lines, err := s.repo.ListCartLines(ctx, cartID)
	if err != nil {
		return decimal.Zero, domain.Internal(err, "cart.total", "failed to list cart lines")
	}

	total := sumLines(lines)
	if err := s.repo.UpdateCartTotal(ctx, repository.UpdateCartTotalParams{
		ID:         cartID,
		TotalValue: total,
	}); err != nil {
		return decimal.Zero, domain.Internal(err, "cart.total", "failed to update cart total")
	}
	return total, nil
}

// refreshCartTotals recomputes the stored totals of carts whose lines were
// changed by a catalog write.
func refreshCartTotals(ctx context.Context, repo repository.Querier, op string, cartIDs []int64) error {
	if len(cartIDs) == 0 {
		return nil
	}
	if err := repo.RefreshCartTotals(ctx, cartIDs); err != nil {
		return domain.Internal(err, op, "failed to refresh cart totals")
	}
	return nil
}

func sumLines(lines []repository.ListCartLinesRow) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.ProductPrice.Mul(decimal.NewFromInt32(l.Amount)))
	}
	return total
}

func mapCartToDomain(cart repository.Cart, lines []repository.ListCartLinesRow) *domain.Cart {
	c := &domain.Cart{
		ID:         cart.ID,
		TotalValue: cart.TotalValue,
		Lines:      make([]domain.CartLine, 0, len(lines)),
	}
	for _, l := range lines {
		c.Lines = append(c.Lines, domain.CartLine{
			ID:     l.ID,
			Amount: l.Amount,
			Item: domain.CartItemView{
				ID:       l.ItemID,
				Size:     l.Size,
				Quantity: l.Quantity,
				Product: domain.ProductSummary{
					ID:          l.ProductID,
					Name:        l.ProductName,
					Price:       l.ProductPrice,
					Description: l.ProductDescription,
					ImageURL:    textPtr(l.ProductImageUrl),
				},
			},
		})
	}
	return c
}

func mapOrderToDomain(o repository.PurchaseOrder, items []repository.OrderItem) domain.Order {
	order := domain.Order{
		ID:          o.ID,
		TotalValue:  o.TotalValue,
		DateOfOrder: o.DateOfOrder.Time,
		Lines:       make([]domain.OrderLine, 0, len(items)),
	}
	for _, it := range items {
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:          it.ID,
			ItemID:      int8Ptr(it.ItemID),
			ProductID:   int8Ptr(it.ProductID),
			Size:        it.Size,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return order
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
