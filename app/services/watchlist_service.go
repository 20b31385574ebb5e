package services

import (
	"context"
	"fmt"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
)

// WatchlistEntry is one liked product joined with its product record.
type WatchlistEntry struct {
	models.WatchlistItem
	Product *models.Product `json:"product,omitempty"`
}

type WatchlistService struct {
	watchlistRepo repositories.WatchlistRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
}

func NewWatchlistService(watchlistRepo repositories.WatchlistRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		productRepo:   productRepo,
	}
}

func (s *WatchlistService) List(ctx context.Context, sessionID string) ([]WatchlistEntry, error) {
	items, err := s.watchlistRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}

	entries := make([]WatchlistEntry, 0, len(items))
	for _, item := range items {
		entry := WatchlistEntry{WatchlistItem: item}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up product for watchlist item %d: %w", item.ID, err)
		}
		entry.Product = product
		entries = append(entries, entry)
	}
	return entries, nil
}

// Add is idempotent: a second add of the same product returns the
// existing entry rather than duplicating it.
func (s *WatchlistService) Add(ctx context.Context, sessionID string, productID int) (*WatchlistEntry, error) {
	if productID <= 0 {
		return nil, apperrors.NewFieldError("productId", "productId is required.")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product", productID)
	}

	item, err := s.watchlistRepo.AddIfAbsent(ctx, sessionID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add watchlist item: %w", err)
	}

	return &WatchlistEntry{WatchlistItem: *item, Product: product}, nil
}

func (s *WatchlistService) Remove(ctx context.Context, sessionID string, itemID int) ([]WatchlistEntry, error) {
	if err := s.watchlistRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return s.List(ctx, sessionID)
}

func (s *WatchlistService) IsInWatchlist(ctx context.Context, sessionID string, productID int) (bool, error) {
	exists, err := s.watchlistRepo.Exists(ctx, sessionID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to check watchlist membership: %w", err)
	}
	return exists, nil
}

// Clear removes every entry for the session in a single bulk delete.
func (s *WatchlistService) Clear(ctx context.Context, sessionID string) error {
	if err := s.watchlistRepo.ClearBySessionID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear watchlist: %w", err)
	}
	return nil
}
