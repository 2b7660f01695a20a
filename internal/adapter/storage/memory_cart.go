package storage

import (
	"context"
	"sync"

	"github.com/rl1809/bookstore/internal/core/domain"
)

// MemoryCartStore holds one cart per session token.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]domain.Cart)}
}

func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[sessionID]
	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return domain.Cart{Lines: lines}, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	s.carts[sessionID] = domain.Cart{Lines: lines}
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
