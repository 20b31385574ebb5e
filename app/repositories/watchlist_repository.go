package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type WatchlistRepositoryImpl interface {
	AddIfAbsent(ctx context.Context, sessionID string, productID int) (*models.WatchlistItem, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.WatchlistItem, error)
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, sessionID string, productID int) (bool, error)
	ClearBySessionID(ctx context.Context, sessionID string) error
}

type watchlistRepository struct {
	mu     sync.Mutex
	items  map[int]models.WatchlistItem
	nextID int
}

func NewWatchlistRepository() WatchlistRepositoryImpl {
	return &watchlistRepository{
		items:  make(map[int]models.WatchlistItem),
		nextID: 1,
	}
}

// AddIfAbsent is idempotent: at most one entry per (session, product).
// A second add returns the existing entry unchanged.
func (r *watchlistRepository) AddIfAbsent(ctx context.Context, sessionID string, productID int) (*models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			existing := item
			return &existing, nil
		}
	}

	item := models.WatchlistItem{
		ID:        r.nextID,
		SessionID: sessionID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.items[item.ID] = item
	return &item, nil
}

func (r *watchlistRepository) GetBySessionID(ctx context.Context, sessionID string) ([]models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.WatchlistItem, 0)
	for _, item := range r.items {
		if item.SessionID == sessionID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("watchlist item", id)
	}
	delete(r.items, id)
	return nil
}

func (r *watchlistRepository) Exists(ctx context.Context, sessionID string, productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// ClearBySessionID removes every entry for the session in one locked
// sweep, so a concurrent add cannot land mid-clear.
func (r *watchlistRepository) ClearBySessionID(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.SessionID == sessionID {
			delete(r.items, id)
		}
	}
	return nil
}
