package repository

import (
	"context"
	"strings"
	"sync"

	"harmony-store/internal/models"
)

// MemoryCatalog implements CatalogStore with in-memory storage.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryCatalog(seed ...models.Product) *MemoryCatalog {
	return &MemoryCatalog{products: append([]models.Product(nil), seed...)}
}

func (s *MemoryCatalog) List(ctx context.Context, category, search string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(search)
	result := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *MemoryCatalog) GetByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryCatalog) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product := newProduct(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)
	p := product
	return &p, nil
}

func (s *MemoryCatalog) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
