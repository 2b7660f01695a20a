package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

// CartService maintains the authoritative cart for each session. Every
// mutation is a total function: absent identifiers are silent no-ops and no
// operation can fail for business reasons, matching the storefront contract.
type CartService struct {
	carts port.CartRepository
}

func NewCartService(carts port.CartRepository) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "get cart")
	}
	return cart, nil
}

// Add merges the item into the cart: an existing line for the same book
// gains quantity, otherwise a new line is appended in insertion order.
// A non-positive quantity defaults to 1. Stock bounds are the caller's
// concern; this layer never consults the catalog.
func (s *CartService) Add(ctx context.Context, sessionID string, item domain.Summary, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "get cart")
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].BookID == item.BookID {
			cart.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, domain.CartLine{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: quantity,
		})
	}

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, errors.Wrap(err, "save cart")
	}
	return cart, nil
}

// UpdateQuantity replaces the quantity of the matching line. A missing line
// or a non-positive quantity leaves the cart unchanged; translating zero
// into a removal is the caller's job.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, bookID string, quantity int) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "get cart")
	}
	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Lines {
		if cart.Lines[i].BookID == bookID {
			cart.Lines[i].Quantity = quantity
			if err := s.carts.Save(ctx, sessionID, cart); err != nil {
				return domain.Cart{}, errors.Wrap(err, "save cart")
			}
			break
		}
	}
	return cart, nil
}

// Remove deletes the line for the book if present; idempotent otherwise.
func (s *CartService) Remove(ctx context.Context, sessionID, bookID string) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "get cart")
	}

	for i := range cart.Lines {
		if cart.Lines[i].BookID == bookID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			if err := s.carts.Save(ctx, sessionID, cart); err != nil {
				return domain.Cart{}, errors.Wrap(err, "save cart")
			}
			break
		}
	}
	return cart, nil
}

// Clear empties the cart, as checkout does after placing an order.
func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return domain.Cart{}, errors.Wrap(err, "clear cart")
	}
	return domain.Cart{}, nil
}
