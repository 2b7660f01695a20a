package domain

import "github.com/shopspring/decimal"

// CategoryAll is the sentinel filter value that matches every category.
const CategoryAll = "All"

// Categories lists every category a book may carry, in storefront order.
var Categories = []string{
	"Classic",
	"Science Fiction",
	"Fantasy",
	"Romance",
	"Mystery",
	"Fiction",
	"Historical Fiction",
}

type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
}

// ValidCategory reports whether c is one of the enumerated categories.
// The CategoryAll sentinel is a filter value, not a valid book category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Summary is the denormalized slice of a book a cart line snapshots at add
// time. Later catalog edits do not touch lines already in a cart.
type Summary struct {
	BookID string
	Title  string
	Author string
	Price  decimal.Decimal
	Image  string
}

func (b Book) Summary() Summary {
	return Summary{
		BookID: b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
		Image:  b.Image,
	}
}
