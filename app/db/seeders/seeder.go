package seeders

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/shopspring/decimal"
)

// SeedCatalog loads the fixed category and product lists into the store.
// Categories and products are immutable after startup in this system.
func SeedCatalog(ctx context.Context, categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl) error {
	categoryIDs := make(map[string]int)

	for _, category := range SeedCategories() {
		c := category
		if err := categoryRepo.Create(ctx, &c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		categoryIDs[c.Slug] = c.ID
	}

	counts := make(map[int]int)
	for _, seed := range SeedProducts() {
		p := seed.Product
		categoryID, ok := categoryIDs[seed.CategorySlug]
		if !ok {
			return fmt.Errorf("seed product %q references unknown category %q", p.Name, seed.CategorySlug)
		}
		p.CategoryID = categoryID
		p.Slug = slug.Make(p.Name)
		if err := productRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		counts[categoryID]++
	}

	categories, err := categoryRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload categories: %w", err)
	}
	for _, category := range categories {
		c := category
		c.ItemCount = counts[c.ID]
		if err := categoryRepo.Update(ctx, &c); err != nil {
			return fmt.Errorf("failed to update item count for %q: %w", c.Name, err)
		}
	}

	return nil
}

// SeedProduct pairs a product with the slug of the category it belongs
// to; the id is resolved at seed time.
type SeedProduct struct {
	Product      models.Product
	CategorySlug string
}

func SeedCategories() []models.Category {
	return []models.Category{
		{Name: "Outerwear", Slug: "outerwear", Description: "Jackets, coats and warm layers for every season."},
		{Name: "Dresses", Slug: "dresses", Description: "Playful dresses for twirling, parties and everyday wear."},
		{Name: "Tops & Tees", Slug: "tops-tees", Description: "Soft t-shirts, tops and long sleeves."},
		{Name: "Bottoms", Slug: "bottoms", Description: "Pants, shorts and leggings built for the playground."},
		{Name: "Sleepwear", Slug: "sleepwear", Description: "Cozy pajamas and sleep sets."},
		{Name: "Accessories", Slug: "accessories", Description: "Hats, socks and finishing touches."},
	}
}

func SeedProducts() []SeedProduct {
	return []SeedProduct{
		{
			CategorySlug: "outerwear",
			Product: models.Product{
				Name:        "Denim Jacket",
				Description: "Classic stonewashed denim jacket with snap buttons and a soft jersey lining.",
				Price:       price("34.99"),
				Images:      []string{"/images/products/denim-jacket-1.jpg", "/images/products/denim-jacket-2.jpg"},
				Sizes:       []string{"2T", "3T", "4T", "5", "6"},
				Colors:      []string{"Blue", "Light Wash"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.7"), ReviewCount: 128,
				InStock: true, IsFeatured: true,
				MinimumOrderQuantity: 10,
			},
		},
		{
			CategorySlug: "dresses",
			Product: models.Product{
				Name:        "Floral Summer Dress",
				Description: "Lightweight cotton dress with an all-over floral print and flutter sleeves.",
				Price:       price("29.99"),
				SalePrice:   salePrice("24.99"),
				Images:      []string{"/images/products/floral-dress-1.jpg"},
				Sizes:       []string{"2T", "3T", "4T"},
				Colors:      []string{"Pink", "Yellow"},
				AgeGroups:   []string{"toddler"},
				Rating:      price("4.9"), ReviewCount: 214,
				InStock: true, IsFeatured: true, IsOnSale: true,
				MinimumOrderQuantity: 12,
			},
		},
		{
			CategorySlug: "tops-tees",
			Product: models.Product{
				Name:        "Dinosaur Graphic Tee",
				Description: "Organic cotton tee with a roaring T-rex print.",
				Price:       price("14.99"),
				Images:      []string{"/images/products/dino-tee-1.jpg"},
				Sizes:       []string{"3T", "4T", "5", "6", "7"},
				Colors:      []string{"Green", "Gray"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.5"), ReviewCount: 96,
				InStock: true, IsNew: true,
				MinimumOrderQuantity: 24,
			},
		},
		{
			CategorySlug: "tops-tees",
			Product: models.Product{
				Name:        "Striped Long Sleeve Top",
				Description: "Breton stripe long sleeve top in brushed cotton.",
				Price:       price("17.99"),
				Images:      []string{"/images/products/striped-top-1.jpg"},
				Sizes:       []string{"2T", "3T", "4T", "5"},
				Colors:      []string{"Navy", "Red"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.3"), ReviewCount: 41,
				InStock: true,
				MinimumOrderQuantity: 24,
			},
		},
		{
			CategorySlug: "bottoms",
			Product: models.Product{
				Name:        "Cargo Jogger Pants",
				Description: "Relaxed joggers with cargo pockets and an elastic waistband.",
				Price:       price("22.99"),
				Images:      []string{"/images/products/cargo-joggers-1.jpg"},
				Sizes:       []string{"4T", "5", "6", "7", "8"},
				Colors:      []string{"Khaki", "Olive"},
				AgeGroups:   []string{"kids"},
				Rating:      price("4.4"), ReviewCount: 58,
				InStock: true, IsNew: true,
				MinimumOrderQuantity: 18,
			},
		},
		{
			CategorySlug: "bottoms",
			Product: models.Product{
				Name:        "Rainbow Leggings",
				Description: "Stretchy leggings with a bold rainbow stripe.",
				Price:       price("12.99"),
				SalePrice:   salePrice("9.99"),
				Images:      []string{"/images/products/rainbow-leggings-1.jpg"},
				Sizes:       []string{"2T", "3T", "4T", "5"},
				Colors:      []string{"Multi"},
				AgeGroups:   []string{"baby", "toddler"},
				Rating:      price("4.6"), ReviewCount: 173,
				InStock: true, IsOnSale: true,
				MinimumOrderQuantity: 30,
			},
		},
		{
			CategorySlug: "outerwear",
			Product: models.Product{
				Name:        "Quilted Puffer Vest",
				Description: "Water-resistant puffer vest with a fleece-lined collar.",
				Price:       price("27.99"),
				Images:      []string{"/images/products/puffer-vest-1.jpg"},
				Sizes:       []string{"3T", "4T", "5", "6"},
				Colors:      []string{"Red", "Navy"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.2"), ReviewCount: 33,
				InStock: true,
				MinimumOrderQuantity: 12,
			},
		},
		{
			CategorySlug: "dresses",
			Product: models.Product{
				Name:        "Tulle Party Dress",
				Description: "Sparkly tulle skirt with a satin bodice for special occasions.",
				Price:       price("39.99"),
				Images:      []string{"/images/products/tulle-dress-1.jpg"},
				Sizes:       []string{"3T", "4T", "5", "6"},
				Colors:      []string{"Lavender", "Ivory"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.8"), ReviewCount: 87,
				InStock: true, IsFeatured: true,
				MinimumOrderQuantity: 8,
			},
		},
		{
			CategorySlug: "sleepwear",
			Product: models.Product{
				Name:        "Space Rocket Pajama Set",
				Description: "Two-piece snug-fit pajamas covered in rockets and planets.",
				Price:       price("19.99"),
				SalePrice:   salePrice("15.99"),
				Images:      []string{"/images/products/rocket-pajamas-1.jpg"},
				Sizes:       []string{"2T", "3T", "4T", "5", "6"},
				Colors:      []string{"Navy"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.7"), ReviewCount: 142,
				InStock: true, IsOnSale: true,
				MinimumOrderQuantity: 20,
			},
		},
		{
			CategorySlug: "sleepwear",
			Product: models.Product{
				Name:        "Bunny Sleep Sack",
				Description: "Wearable blanket in organic cotton with a bunny applique.",
				Price:       price("25.99"),
				Images:      []string{"/images/products/sleep-sack-1.jpg"},
				Sizes:       []string{"0-6M", "6-12M", "12-18M"},
				Colors:      []string{"Cream", "Sage"},
				AgeGroups:   []string{"baby"},
				Rating:      price("4.9"), ReviewCount: 205,
				InStock: true,
				MinimumOrderQuantity: 15,
			},
		},
		{
			CategorySlug: "accessories",
			Product: models.Product{
				Name:        "Chunky Knit Beanie",
				Description: "Hand-feel chunky knit beanie with a fold-over cuff.",
				Price:       price("11.99"),
				Images:      []string{"/images/products/knit-beanie-1.jpg"},
				Sizes:       []string{"S", "M"},
				Colors:      []string{"Mustard", "Gray", "Pink"},
				AgeGroups:   []string{"toddler", "kids"},
				Rating:      price("4.1"), ReviewCount: 22,
				InStock: true, IsNew: true,
				MinimumOrderQuantity: 36,
			},
		},
		{
			CategorySlug: "accessories",
			Product: models.Product{
				Name:        "Crew Sock Three Pack",
				Description: "Three pairs of cushioned crew socks with non-slip grips.",
				Price:       price("9.99"),
				Images:      []string{"/images/products/sock-pack-1.jpg"},
				Sizes:       []string{"S", "M", "L"},
				Colors:      []string{"Multi"},
				AgeGroups:   []string{"baby", "toddler", "kids"},
				Rating:      price("4.4"), ReviewCount: 67,
				InStock: false,
				MinimumOrderQuantity: 48,
			},
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func salePrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
