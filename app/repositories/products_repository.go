package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/jainam01/four-kids-updated-sub000/app/models"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategoryID(ctx context.Context, categoryID int) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	mu       sync.Mutex
	products map[int]models.Product
	nextID   int
}

func NewProductRepository() ProductRepositoryImpl {
	return &productRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range r.products {
		if product.Slug == slug {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

func (r *productRepository) GetByCategoryID(ctx context.Context, categoryID int) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []models.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil
	}
	r.products[product.ID] = *product
	return nil
}
