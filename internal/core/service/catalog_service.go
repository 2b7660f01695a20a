package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrBookExists   = errors.New("book already exists")
	ErrInvalidBook  = errors.New("invalid book")
)

// Filter selects a visible subset of the catalog. Category and Query are
// independent predicates combined with AND; the zero Filter passes everything.
type Filter struct {
	Category string
	Query    string
}

type CatalogService struct {
	catalog port.CatalogRepository
}

func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// List returns the books matching the filter, preserving catalog order.
// An empty result is a valid outcome, not an error.
func (s *CatalogService) List(ctx context.Context, f Filter) ([]domain.Book, error) {
	books, err := s.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list catalog")
	}

	matched := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if matchesCategory(b, f.Category) && matchesQuery(b, f.Query) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get book")
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Create adds a book to the catalog. An empty ID is assigned the next
// catalog identifier; a caller-supplied ID must not collide.
func (s *CatalogService) Create(ctx context.Context, book domain.Book) (*domain.Book, error) {
	if err := validateBook(book); err != nil {
		return nil, err
	}

	if book.ID == "" {
		id, err := s.catalog.NextID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "allocate book id")
		}
		book.ID = id
	} else {
		existing, err := s.catalog.Get(ctx, book.ID)
		if err != nil {
			return nil, errors.Wrap(err, "get book")
		}
		if existing != nil {
			return nil, ErrBookExists
		}
	}

	if err := s.catalog.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "create book")
	}
	return &book, nil
}

// Update replaces the stored book wholesale by its identifier.
func (s *CatalogService) Update(ctx context.Context, book domain.Book) (*domain.Book, error) {
	if book.ID == "" {
		return nil, errors.Wrap(ErrInvalidBook, "id required")
	}
	if err := validateBook(book); err != nil {
		return nil, err
	}

	ok, err := s.catalog.Replace(ctx, book)
	if err != nil {
		return nil, errors.Wrap(err, "replace book")
	}
	if !ok {
		return nil, ErrBookNotFound
	}
	return &book, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	ok, err := s.catalog.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete book")
	}
	if !ok {
		return ErrBookNotFound
	}
	return nil
}

// matchesCategory is exact and case-sensitive; "All" or an unset selector
// passes every book.
func matchesCategory(b domain.Book, category string) bool {
	if category == "" || category == domain.CategoryAll {
		return true
	}
	return b.Category == category
}

// matchesQuery is a case-insensitive substring match over title OR author.
func matchesQuery(b domain.Book, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

func validateBook(b domain.Book) error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return errors.Wrap(ErrInvalidBook, "title required")
	case strings.TrimSpace(b.Author) == "":
		return errors.Wrap(ErrInvalidBook, "author required")
	case b.Price.IsNegative():
		return errors.Wrap(ErrInvalidBook, "price must not be negative")
	case b.Stock < 0:
		return errors.Wrap(ErrInvalidBook, "stock must not be negative")
	case b.Rating < 0 || b.Rating > 5:
		return errors.Wrap(ErrInvalidBook, "rating must be between 0 and 5")
	case !domain.ValidCategory(b.Category):
		return errors.Wrapf(ErrInvalidBook, "unknown category %q", b.Category)
	}
	return nil
}
