package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/shopspring/decimal"
)

var (
	sizes     = []string{"0-6M", "6-12M", "2T", "3T", "4T", "5", "6", "7", "8"}
	colors    = []string{"Blue", "Pink", "Green", "Yellow", "Navy", "Gray", "Red", "Multi"}
	ageGroups = []string{"baby", "toddler", "kids"}
)

// ProductFaker builds a random product for tests and dev seeding. The
// slug gets a uuid suffix so repeated fakes never collide.
func ProductFaker(categoryID int) *models.Product {
	name := faker.Word() + " " + faker.Word()

	p := &models.Product{
		Name:                 name,
		Slug:                 slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:          faker.Sentence(),
		Price:                fakePrice(),
		CategoryID:           categoryID,
		Images:               []string{"/images/products/placeholder.jpg"},
		Sizes:                pick(sizes, rand.Intn(4)+2),
		Colors:               pick(colors, rand.Intn(2)+1),
		AgeGroups:            pick(ageGroups, rand.Intn(2)+1),
		Rating:               decimal.NewFromFloat(float64(rand.Intn(21)+30) / 10),
		ReviewCount:          rand.Intn(250),
		InStock:              rand.Intn(10) > 1,
		IsNew:                rand.Intn(2) == 0,
		MinimumOrderQuantity: (rand.Intn(5) + 1) * 6,
	}

	if rand.Intn(3) == 0 {
		sale := p.Price.Mul(decimal.NewFromFloat(0.8)).Round(2)
		p.SalePrice = &sale
		p.IsOnSale = true
	}

	return p
}

func fakePrice() decimal.Decimal {
	cents := rand.Intn(4000) + 500
	return decimal.New(int64(cents), -2)
}

func pick(from []string, n int) []string {
	if n > len(from) {
		n = len(from)
	}
	perm := rand.Perm(len(from))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, from[i])
	}
	return out
}
