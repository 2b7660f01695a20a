package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	index  map[string]int
}

func NewMemoryOrderStore(seed []domain.Order) *MemoryOrderStore {
	s := &MemoryOrderStore{
		orders: make([]domain.Order, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
	}
	for _, o := range seed {
		s.index[o.ID] = len(s.orders)
		s.orders = append(s.orders, cloneOrder(o))
	}
	return s
}

func (s *MemoryOrderStore) Create(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[order.ID] = len(s.orders)
	s.orders = append(s.orders, cloneOrder(order))
	return nil
}

func (s *MemoryOrderStore) Get(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	order := cloneOrder(s.orders[i])
	return &order, nil
}

func (s *MemoryOrderStore) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (s *MemoryOrderStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (s *MemoryOrderStore) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false, nil
	}
	s.orders[i].Status = status
	s.orders[i].UpdatedAt = time.Now()
	return true, nil
}

func cloneOrder(o domain.Order) domain.Order {
	lines := make([]domain.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}
