package repository

import (
	"context"
	"sync"

	"harmony-store/internal/models"
)

// MemoryOrders implements OrderStore with in-memory storage.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{}
}

func (s *MemoryOrders) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, *order)
	return nil
}

func (s *MemoryOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}
