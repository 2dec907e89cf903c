// Package repository defines the storage ports used by the handlers and
// the checkout workflow, with MongoDB implementations for normal
// operation and in-memory implementations seeded with demo data for the
// offline fallback and for tests.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"harmony-store/internal/models"
)

// Common errors returned by the stores.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AccountStore holds user credential records.
type AccountStore interface {
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create hashes the password and appends a new account.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, name, email, password string) (*models.User, error)

	// VerifyCredentials returns the user when email and password match.
	// Returns the same ErrInvalidCredentials whether the email is unknown
	// or the password is wrong, so accounts cannot be enumerated.
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
}

// CatalogStore holds product records.
type CatalogStore interface {
	// List returns products matching the filters. An empty or "All"
	// category means no category filter; search is a case-insensitive
	// substring match against name or description. Filters AND-compose.
	List(ctx context.Context, category, search string) ([]models.Product, error)

	// GetByID returns the product with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// Create assigns a fresh identifier, applies defaults and stores the
	// product.
	Create(ctx context.Context, input ProductInput) (*models.Product, error)

	// Delete removes the product with the given id, or returns
	// ErrNotFound leaving the catalog unchanged.
	Delete(ctx context.Context, id string) error
}

// OrderStore is an append-only store of completed orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// ProductInput carries the admin-supplied fields for a new product.
// Field validation happens at the HTTP layer before it gets here.
type ProductInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Image       string
	Description string
	Stock       int
}

func newProduct(input ProductInput) models.Product {
	image := input.Image
	if image == "" {
		image = models.PlaceholderImage
	}
	return models.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Image:       image,
		Description: input.Description,
		Stock:       input.Stock,
	}
}
