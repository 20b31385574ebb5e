package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type CartRepositoryImpl interface {
	GetBySessionID(ctx context.Context, sessionID string) (*models.Cart, error)
	GetOrCreateBySessionID(ctx context.Context, sessionID string) (*models.Cart, error)
}

type cartRepository struct {
	mu     sync.Mutex
	carts  map[int]models.Cart
	nextID int
}

func NewCartRepository() CartRepositoryImpl {
	return &cartRepository{
		carts:  make(map[int]models.Cart),
		nextID: 1,
	}
}

func (r *cartRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findBySessionID(sessionID), nil
}

// GetOrCreateBySessionID lazily creates the session's cart on first use.
// One cart per session: lookup is by first match.
func (r *cartRepository) GetOrCreateBySessionID(ctx context.Context, sessionID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart := r.findBySessionID(sessionID); cart != nil {
		return cart, nil
	}

	cart := models.Cart{
		ID:        r.nextID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.carts[cart.ID] = cart
	return &cart, nil
}

func (r *cartRepository) findBySessionID(sessionID string) *models.Cart {
	for _, cart := range r.carts {
		if cart.SessionID == sessionID {
			c := cart
			return &c
		}
	}
	return nil
}
