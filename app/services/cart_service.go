package services

import (
	"context"
	"fmt"
	"log"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/shopspring/decimal"
)

// CartLine is one cart line joined with its current product record.
type CartLine struct {
	models.CartItem
	Product   *models.Product `json:"product,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartView is the payload every cart endpoint responds with.
type CartView struct {
	Items        []CartLine      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	DisplayTotal string          `json:"displayTotal"`
}

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// GetCart never errors on an absent cart: a session without one gets the
// empty view.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return emptyCartView(), nil
	}
	return s.buildCartView(ctx, cart.ID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID, quantity int, size, color string) (*CartView, error) {
	fields := make(map[string]string)
	if productID <= 0 {
		fields["productId"] = "productId is required."
	}
	if quantity < 1 {
		fields["quantity"] = "quantity must be at least 1."
	}
	if size == "" {
		fields["size"] = "size is required."
	}
	if color == "" {
		fields["color"] = "color is required."
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product", productID)
	}

	cart, err := s.cartRepo.GetOrCreateBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	if _, err := s.cartItemRepo.AddOrMerge(ctx, cart.ID, productID, quantity, size, color); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return s.buildCartView(ctx, cart.ID)
}

func (s *CartService) UpdateItem(ctx context.Context, sessionID string, itemID, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, apperrors.NewFieldError("quantity", "quantity must be at least 1.")
	}

	item, err := s.cartItemRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}

	return s.buildCartView(ctx, item.CartID)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID int) (*CartView, error) {
	if err := s.cartItemRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return emptyCartView(), nil
	}
	return s.buildCartView(ctx, cart.ID)
}

// ClearCart is idempotent: clearing a session that never had a cart is a
// no-op, not an error.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return emptyCartView(), nil
	}

	if err := s.cartItemRepo.ClearByCartID(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to clear cart items: %w", err)
	}
	return emptyCartView(), nil
}

// buildCartView joins each line with the current product record and
// recomputes the total from live pricing, so a catalog price change
// shows up on the next read rather than freezing the add-time price.
func (s *CartService) buildCartView(ctx context.Context, cartID int) (*CartView, error) {
	items, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	view := &CartView{
		Items: make([]CartLine, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		line := CartLine{CartItem: item}

		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up product for cart item %d: %w", item.ID, err)
		}
		if product == nil {
			log.Printf("CartService.buildCartView: product %d missing for cart item %d, skipping line total", item.ProductID, item.ID)
		} else {
			line.Product = product
			line.UnitPrice = product.EffectivePrice()
			line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			view.Total = view.Total.Add(line.Subtotal)
		}

		view.Items = append(view.Items, line)
	}

	view.DisplayTotal = helpers.FormatPrice(view.Total)
	return view, nil
}

func emptyCartView() *CartView {
	return &CartView{
		Items:        []CartLine{},
		Total:        decimal.Zero,
		DisplayTotal: helpers.FormatPrice(decimal.Zero),
	}
}
