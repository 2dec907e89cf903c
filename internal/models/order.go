package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a denormalized line snapshot: later product edits or
// deletions do not affect it.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ShippingDetails holds the destination for an order. All four fields
// are required before an order can be placed.
type ShippingDetails struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// Order is an immutable record of a completed purchase.
type Order struct {
	OrderID   string          `json:"orderId"`
	UserID    string          `json:"userId"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Shipping  ShippingDetails `json:"shipping"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewOrder assembles an order with a time-derived identifier and the
// current timestamp.
func NewOrder(userID string, items []OrderItem, total decimal.Decimal, shipping ShippingDetails) *Order {
	now := time.Now()
	return &Order{
		OrderID:   fmt.Sprintf("ORD-%d", now.UnixMilli()),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Shipping:  shipping,
		Timestamp: now,
	}
}
