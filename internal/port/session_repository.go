package port

import (
	"context"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type SessionRepository interface {
	// Save stores or overwrites the session keyed by its token.
	Save(ctx context.Context, session domain.Session) error

	// Get returns the session for the token, or nil if unknown.
	Get(ctx context.Context, token string) (*domain.Session, error)

	// Delete forgets the session; no-op for an unknown token.
	Delete(ctx context.Context, token string) error
}
