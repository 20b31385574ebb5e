package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type InquiryRepositoryImpl interface {
	Create(ctx context.Context, inquiry *models.WholesaleInquiry) error
	GetAll(ctx context.Context) ([]models.WholesaleInquiry, error)
}

type inquiryRepository struct {
	mu        sync.Mutex
	inquiries map[int]models.WholesaleInquiry
	nextID    int
}

func NewInquiryRepository() InquiryRepositoryImpl {
	return &inquiryRepository{
		inquiries: make(map[int]models.WholesaleInquiry),
		nextID:    1,
	}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.WholesaleInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry.ID = r.nextID
	r.nextID++
	inquiry.CreatedAt = time.Now()
	r.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (r *inquiryRepository) GetAll(ctx context.Context) ([]models.WholesaleInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries := make([]models.WholesaleInquiry, 0, len(r.inquiries))
	for _, inquiry := range r.inquiries {
		inquiries = append(inquiries, inquiry)
	}
	sort.Slice(inquiries, func(i, j int) bool { return inquiries[i].ID < inquiries[j].ID })
	return inquiries, nil
}
