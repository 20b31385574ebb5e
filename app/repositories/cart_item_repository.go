package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type CartItemRepositoryImpl interface {
	AddOrMerge(ctx context.Context, cartID, productID, quantity int, size, color string) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*models.CartItem, error)
	GetByCartID(ctx context.Context, cartID int) ([]models.CartItem, error)
	ClearByCartID(ctx context.Context, cartID int) error
}

type cartItemRepository struct {
	mu     sync.Mutex
	items  map[int]models.CartItem
	nextID int
}

func NewCartItemRepository() CartItemRepositoryImpl {
	return &cartItemRepository{
		items:  make(map[int]models.CartItem),
		nextID: 1,
	}
}

// AddOrMerge appends a new line, unless one already exists for the exact
// (product, size, color) tuple, in which case it increments that line's
// quantity instead. The read-modify-write runs under the repository lock
// so the one-line-per-tuple invariant holds across concurrent adds.
func (r *cartItemRepository) AddOrMerge(ctx context.Context, cartID, productID, quantity int, size, color string) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CartID == cartID && item.SameLine(productID, size, color) {
			item.Quantity += quantity
			item.UpdatedAt = time.Now()
			r.items[id] = item
			return &item, nil
		}
	}

	now := time.Now()
	item := models.CartItem{
		ID:        r.nextID,
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.items[item.ID] = item
	return &item, nil
}

func (r *cartItemRepository) UpdateQuantity(ctx context.Context, id, quantity int) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("cart item", id)
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return &item, nil
}

func (r *cartItemRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("cart item", id)
	}
	delete(r.items, id)
	return nil
}

func (r *cartItemRepository) GetByID(ctx context.Context, id int) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCartID(ctx context.Context, cartID int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.CartID == cartID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *cartItemRepository) ClearByCartID(ctx context.Context, cartID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}
