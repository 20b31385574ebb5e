package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/shopspring/decimal"
)

const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"

	DefaultPageSize = 6
)

// ProductFilter is the typed filter specification for the product
// listing. Zero values mean "no constraint from this field". Specified
// predicates combine with AND; within a list field membership is OR.
type ProductFilter struct {
	CategorySlug string
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sizes        []string
	Colors       []string
	AgeGroups    []string
	Featured     *bool
	OnSale       *bool
	New          *bool
	Sort         string
	Page         int
	Limit        int
}

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, apperrors.NewNotFoundError("category", slug)
	}
	return category, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product", slug)
	}
	return product, nil
}

// FilterProducts runs the full pipeline: filter, sort, then page slice.
// An unknown category slug drops the category constraint instead of
// erroring, matching the storefront's query behavior.
func (s *CatalogService) FilterProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	var categoryID int
	if filter.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, filter.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category slug: %w", err)
		}
		if category != nil {
			categoryID = category.ID
		}
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if matchesFilter(&product, &filter, categoryID) {
			filtered = append(filtered, product)
		}
	}

	sortProducts(filtered, filter.Sort)

	return paginate(filtered, filter.Page, filter.Limit), nil
}

func matchesFilter(p *models.Product, f *ProductFilter, categoryID int) bool {
	if categoryID != 0 && p.CategoryID != categoryID {
		return false
	}

	if f.Search != "" {
		keyword := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			return false
		}
	}

	price := p.EffectivePrice()
	if f.MinPrice != nil && price.Cmp(*f.MinPrice) < 0 {
		return false
	}
	if f.MaxPrice != nil && price.Cmp(*f.MaxPrice) > 0 {
		return false
	}

	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	if len(f.AgeGroups) > 0 && !intersects(p.AgeGroups, f.AgeGroups) {
		return false
	}

	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	if f.OnSale != nil && p.IsOnSale != *f.OnSale {
		return false
	}
	if f.New != nil && p.IsNew != *f.New {
		return false
	}

	return true
}

// intersects reports whether any requested value appears in the
// product's list (OR semantics, not AND).
func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortProducts orders in place by exactly one sort key; "newest"
// (descending id, the insertion-order proxy) is the default.
func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().Cmp(products[j].EffectivePrice()) < 0
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().Cmp(products[j].EffectivePrice()) > 0
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}

// paginate slices page n (1-indexed) out of the sorted result. Page 0
// means no pagination. An out-of-range page yields an empty page, never
// an error.
func paginate(products []models.Product, page, limit int) []models.Product {
	if page < 1 {
		return products
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
