package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
)

type OrderService struct {
	orders port.OrderRepository
	carts  port.CartRepository
}

func NewOrderService(orders port.OrderRepository, carts port.CartRepository) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

// Checkout synthesizes an order from the session's cart, appends it to the
// order store and clears the cart. Stock is not touched: books are never
// mutated by shopping flows.
func (s *OrderService) Checkout(ctx context.Context, session domain.Session) (*domain.Order, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	cart, err := s.carts.Get(ctx, session.Token)
	if err != nil {
		return nil, errors.Wrap(err, "get cart")
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	order := domain.Order{
		ID:        newOrderID(),
		UserID:    session.Identity.ID,
		Date:      now,
		Status:    domain.OrderStatusPending,
		Total:     cart.TotalPrice(),
		Lines:     make([]domain.OrderLine, 0, len(cart.Lines)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, l := range cart.Lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			BookID:   l.BookID,
			Title:    l.Title,
			Author:   l.Author,
			Price:    l.Price,
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	if err := s.carts.Clear(ctx, session.Token); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}
	return &order, nil
}

// History returns the user's orders, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// ListAll returns every order for the admin console.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// UpdateStatus moves an order through the admin console's status set.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !domain.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	ok, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "ORD-" + suffix
}
