package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID                   int              `json:"id"`
	Name                 string           `json:"name"`
	Slug                 string           `json:"slug"`
	Description          string           `json:"description"`
	Price                decimal.Decimal  `json:"price"`
	SalePrice            *decimal.Decimal `json:"salePrice,omitempty"`
	CategoryID           int              `json:"categoryId"`
	Images               []string         `json:"images"`
	Sizes                []string         `json:"sizes"`
	Colors               []string         `json:"colors"`
	AgeGroups            []string         `json:"ageGroups"`
	Rating               decimal.Decimal  `json:"rating"`
	ReviewCount          int              `json:"reviewCount"`
	InStock              bool             `json:"inStock"`
	IsNew                bool             `json:"isNew"`
	IsFeatured           bool             `json:"isFeatured"`
	IsOnSale             bool             `json:"isOnSale"`
	MinimumOrderQuantity int              `json:"minimumOrderQuantity"`
}

// EffectivePrice is the price used for totals, filtering and sorting:
// the sale price when one is set, the regular price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
