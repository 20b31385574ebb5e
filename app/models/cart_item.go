package models

import "time"

type CartItem struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cartId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SameLine reports whether another add targets this line: one cart line
// exists per (product, size, color) tuple, duplicates merge into it.
func (ci *CartItem) SameLine(productID int, size, color string) bool {
	return ci.ProductID == productID && ci.Size == size && ci.Color == color
}
