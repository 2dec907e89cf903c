package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"harmony-store/internal/auth"
	"harmony-store/internal/models"
)

// MemoryAccounts implements AccountStore with in-memory storage. Used as
// the fallback when MongoDB is unreachable, and as the test double.
type MemoryAccounts struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryAccounts(seed ...models.User) *MemoryAccounts {
	return &MemoryAccounts{users: append([]models.User(nil), seed...)}
}

func (s *MemoryAccounts) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAccounts) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           fmt.Sprintf("user-%d", time.Now().UnixNano()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	s.users = append(s.users, user)

	u := user
	return &u, nil
}

func (s *MemoryAccounts) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
