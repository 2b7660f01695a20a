package port

import (
	"context"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type CatalogRepository interface {
	// List returns every book in catalog order.
	List(ctx context.Context) ([]domain.Book, error)

	// Get returns the book with the given ID, or nil if absent.
	Get(ctx context.Context, id string) (*domain.Book, error)

	// NextID allocates an identifier for a new book.
	NextID(ctx context.Context) (string, error)

	// Create appends a new book to the catalog.
	Create(ctx context.Context, book domain.Book) error

	// Replace swaps the stored book wholesale by ID, returning false if
	// no book with that ID exists.
	Replace(ctx context.Context, book domain.Book) (bool, error)

	// Delete removes the book by ID, returning false if absent.
	Delete(ctx context.Context, id string) (bool, error)
}
