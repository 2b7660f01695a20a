package port

import (
	"context"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order domain.Order) error

	// Get returns the order by ID, or nil if absent.
	Get(ctx context.Context, id string) (*domain.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]domain.Order, error)

	// UpdateStatus sets the order's status, returning false if absent.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)
}
