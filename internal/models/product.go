package models

import "github.com/shopspring/decimal"

// PlaceholderImage is used when an admin creates a product without an image.
const PlaceholderImage = "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=600&h=600&fit=crop"

// Product represents a purchasable item in the catalog.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}
