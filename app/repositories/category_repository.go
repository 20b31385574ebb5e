package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	mu         sync.Mutex
	categories map[int]models.Category
	nextID     int
}

func NewCategoryRepository() CategoryRepositoryImpl {
	return &categoryRepository{
		categories: make(map[int]models.Category),
		nextID:     1,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = *category
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if category.Slug == slug {
			c := category
			return &c, nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return nil
	}
	r.categories[category.ID] = *category
	return nil
}
