package models

import "time"

type WholesaleInquiry struct {
	ID           int       `json:"id"`
	BusinessName string    `json:"businessName"`
	ContactName  string    `json:"contactName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}
