package port

import (
	"context"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type CartRepository interface {
	// Get returns the cart owned by the session; an empty cart if none yet.
	Get(ctx context.Context, sessionID string) (domain.Cart, error)

	// Save stores the cart wholesale under the session.
	Save(ctx context.Context, sessionID string, cart domain.Cart) error

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error
}
