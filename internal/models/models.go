package models

import (
	"time"
)

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Type      string    `gorm:"not null"                  json:"type"`
	Brand     string    `gorm:"not null"                  json:"brand"`
	Name      string    `gorm:"not null"                  json:"name"`
	Quantity  uint      `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"                              json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_user_product;not null"   json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_user_product;not null"   json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"              json:"quantity"`
}

const (
	OrderStatusRegistered = "registered"
	OrderStatusVerified   = "verified"
	OrderStatusSent       = "sent"
	OrderStatusDelivered  = "delivered"
)

type Order struct {
	ID        uint      `gorm:"primaryKey"      json:"id"`
	UserID    uint      `gorm:"index;not null"  json:"user_id"`
	TrackID   int64     `gorm:"not null"        json:"track_id"`
	Status    string    `gorm:"not null"        json:"status"`
	CreatedAt time.Time `gorm:"not null"        json:"created_at"`
}

// NextStatus returns the status that follows s in the delivery chain
// registered -> verified -> sent -> delivered. Transitions are performed
// by an administrative actor, never by the checkout flow.
func NextStatus(s string) (string, bool) {
	switch s {
	case OrderStatusRegistered:
		return OrderStatusVerified, true
	case OrderStatusVerified:
		return OrderStatusSent, true
	case OrderStatusSent:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}
