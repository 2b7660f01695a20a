package storage

import (
	"context"
	"strconv"
	"sync"

	"github.com/rl1809/bookstore/internal/core/domain"
)

// MemoryCatalog keeps the catalog in process memory. Insertion order is
// preserved so filtered views stay stable.
type MemoryCatalog struct {
	mu     sync.RWMutex
	books  []domain.Book
	index  map[string]int
	nextID int
}

func NewMemoryCatalog(seed []domain.Book) *MemoryCatalog {
	c := &MemoryCatalog{
		books:  make([]domain.Book, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
		nextID: 1,
	}
	for _, b := range seed {
		c.index[b.ID] = len(c.books)
		c.books = append(c.books, b)
		if n, err := strconv.Atoi(b.ID); err == nil && n >= c.nextID {
			c.nextID = n + 1
		}
	}
	return c
}

func (c *MemoryCatalog) List(ctx context.Context) ([]domain.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]domain.Book, len(c.books))
	copy(books, c.books)
	return books, nil
}

func (c *MemoryCatalog) Get(ctx context.Context, id string) (*domain.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	book := c.books[i]
	return &book, nil
}

func (c *MemoryCatalog) NextID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := strconv.Itoa(c.nextID)
	c.nextID++
	return id, nil
}

func (c *MemoryCatalog) Create(ctx context.Context, book domain.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[book.ID] = len(c.books)
	c.books = append(c.books, book)
	return nil
}

func (c *MemoryCatalog) Replace(ctx context.Context, book domain.Book) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[book.ID]
	if !ok {
		return false, nil
	}
	c.books[i] = book
	return true, nil
}

func (c *MemoryCatalog) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false, nil
	}
	c.books = append(c.books[:i], c.books[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.books); j++ {
		c.index[c.books[j].ID] = j
	}
	return true, nil
}
