package models

import "time"

type WatchlistItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID int       `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
