package models

import "time"

type Cart struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}
