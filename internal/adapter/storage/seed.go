package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/bookstore/internal/core/domain"
)

// DemoUserID owns the seeded order history; logging in as demo@bookstore.com
// resolves to this identifier.
const DemoUserID = "user-demo"

// SeedBooks returns the storefront's initial catalog.
func SeedBooks() []domain.Book {
	return []domain.Book{
		{
			ID:          "1",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Description: "The Great Gatsby is a 1925 novel by American writer F. Scott Fitzgerald. Set in the Jazz Age on Long Island, the novel depicts narrator Nick Carraway's interactions with mysterious millionaire Jay Gatsby and Gatsby's obsession to reunite with his former lover, Daisy Buchanan.",
			Price:       price("12.99"),
			Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop",
			Stock:       15,
			Category:    "Classic",
			Rating:      4.5,
		},
		{
			ID:          "2",
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Description: "To Kill a Mockingbird is a novel by Harper Lee published in 1960. It was immediately successful, winning the Pulitzer Prize, and has become a classic of modern American literature.",
			Price:       price("14.99"),
			Image:       "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400&h=600&fit=crop",
			Stock:       20,
			Category:    "Classic",
			Rating:      4.8,
		},
		{
			ID:          "3",
			Title:       "1984",
			Author:      "George Orwell",
			Description: "1984 is a dystopian social science fiction novel and cautionary tale by English writer George Orwell. It was published on 8 June 1949 by Secker & Warburg as Orwell's ninth and final book completed in his lifetime.",
			Price:       price("13.99"),
			Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop",
			Stock:       12,
			Category:    "Science Fiction",
			Rating:      4.7,
		},
		{
			ID:          "4",
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Description: "Pride and Prejudice is an 1813 novel of manners written by Jane Austen. The novel follows the character development of Elizabeth Bennet, the protagonist of the book, who learns about the repercussions of hasty judgments.",
			Price:       price("11.99"),
			Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400&h=600&fit=crop",
			Stock:       18,
			Category:    "Romance",
			Rating:      4.6,
		},
		{
			ID:          "5",
			Title:       "The Catcher in the Rye",
			Author:      "J.D. Salinger",
			Description: "The Catcher in the Rye is a novel by J. D. Salinger, partially published in serial form in 1945-1946 and as a novel in 1951. It was originally intended for adults, but is often read by adolescents for its themes of angst and alienation.",
			Price:       price("10.99"),
			Image:       "https://images.unsplash.com/photo-1589998059171-988d887df646?w=400&h=600&fit=crop",
			Stock:       10,
			Category:    "Classic",
			Rating:      4.3,
		},
		{
			ID:          "6",
			Title:       "The Hobbit",
			Author:      "J.R.R. Tolkien",
			Description: "The Hobbit, or There and Back Again is a children's fantasy novel by English author J. R. R. Tolkien. It was published on 21 September 1937 to wide critical acclaim.",
			Price:       price("15.99"),
			Image:       "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=400&h=600&fit=crop",
			Stock:       25,
			Category:    "Fantasy",
			Rating:      4.9,
		},
		{
			ID:          "7",
			Title:       "Harry Potter and the Sorcerer's Stone",
			Author:      "J.K. Rowling",
			Description: "Harry Potter and the Philosopher's Stone is a fantasy novel written by British author J. K. Rowling. The first novel in the Harry Potter series.",
			Price:       price("16.99"),
			Image:       "https://images.unsplash.com/photo-1621944190310-e3cca1564bd7?w=400&h=600&fit=crop",
			Stock:       30,
			Category:    "Fantasy",
			Rating:      4.9,
		},
		{
			ID:          "8",
			Title:       "The Da Vinci Code",
			Author:      "Dan Brown",
			Description: "The Da Vinci Code is a 2003 mystery thriller novel by Dan Brown. It follows symbologist Robert Langdon and cryptologist Sophie Neveu after a murder in the Louvre Museum in Paris.",
			Price:       price("14.99"),
			Image:       "https://images.unsplash.com/photo-1519682337058-a94d519337bc?w=400&h=600&fit=crop",
			Stock:       14,
			Category:    "Mystery",
			Rating:      4.2,
		},
		{
			ID:          "9",
			Title:       "The Alchemist",
			Author:      "Paulo Coelho",
			Description: "The Alchemist is a novel by Brazilian author Paulo Coelho which was first published in 1988. Originally written in Portuguese, it became a widely translated international bestseller.",
			Price:       price("12.99"),
			Image:       "https://images.unsplash.com/photo-1553729459-efe14ef6055d?w=400&h=600&fit=crop",
			Stock:       22,
			Category:    "Fiction",
			Rating:      4.4,
		},
		{
			ID:          "10",
			Title:       "The Book Thief",
			Author:      "Markus Zusak",
			Description: "The Book Thief is a historical fiction novel by Australian author Markus Zusak, and is his most popular work. Published in 2005, The Book Thief became an international bestseller.",
			Price:       price("13.99"),
			Image:       "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400&h=600&fit=crop",
			Stock:       16,
			Category:    "Historical Fiction",
			Rating:      4.7,
		},
		{
			ID:          "11",
			Title:       "Brave New World",
			Author:      "Aldous Huxley",
			Description: "Brave New World is a dystopian novel written in 1931 by English author Aldous Huxley, and published in 1932. Set in a futuristic World State, the novel anticipates huge scientific advancements.",
			Price:       price("11.99"),
			Image:       "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400&h=600&fit=crop",
			Stock:       11,
			Category:    "Science Fiction",
			Rating:      4.5,
		},
		{
			ID:          "12",
			Title:       "The Lord of the Rings",
			Author:      "J.R.R. Tolkien",
			Description: "The Lord of the Rings is an epic high-fantasy novel by English author and scholar J. R. R. Tolkien. Set in Middle-earth, the story began as a sequel to Tolkien's 1937 children's book The Hobbit.",
			Price:       price("24.99"),
			Image:       "https://images.unsplash.com/photo-1596496181848-3091d4878b24?w=400&h=600&fit=crop",
			Stock:       20,
			Category:    "Fantasy",
			Rating:      5.0,
		},
	}
}

// SeedOrders returns the demo account's order history. Line prices are
// snapshots from the time of the fictional purchase and may diverge from
// the current catalog.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:     "ORD-ABC123",
			UserID: DemoUserID,
			Date:   date(2024, time.November, 10),
			Status: domain.OrderStatusCompleted,
			Total:  price("42.97"),
			Lines: []domain.OrderLine{
				{
					BookID:   "1",
					Title:    "The Great Gatsby",
					Author:   "F. Scott Fitzgerald",
					Price:    price("12.99"),
					Image:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop",
					Quantity: 1,
				},
				{
					BookID:   "2",
					Title:    "To Kill a Mockingbird",
					Author:   "Harper Lee",
					Price:    price("14.99"),
					Image:    "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400&h=600&fit=crop",
					Quantity: 2,
				},
			},
		},
		{
			ID:     "ORD-DEF456",
			UserID: DemoUserID,
			Date:   date(2024, time.November, 12),
			Status: domain.OrderStatusShipping,
			Total:  price("28.98"),
			Lines: []domain.OrderLine{
				{
					BookID:   "3",
					Title:    "1984",
					Author:   "George Orwell",
					Price:    price("13.99"),
					Image:    "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop",
					Quantity: 1,
				},
				{
					BookID:   "6",
					Title:    "The Hobbit",
					Author:   "J.R.R. Tolkien",
					Price:    price("14.99"),
					Image:    "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=400&h=600&fit=crop",
					Quantity: 1,
				},
			},
		},
		{
			ID:     "ORD-GHI789",
			UserID: DemoUserID,
			Date:   date(2024, time.November, 14),
			Status: domain.OrderStatusPending,
			Total:  price("16.99"),
			Lines: []domain.OrderLine{
				{
					BookID:   "7",
					Title:    "Harry Potter and the Sorcerer's Stone",
					Author:   "J.K. Rowling",
					Price:    price("16.99"),
					Image:    "https://images.unsplash.com/photo-1621944190310-e3cca1564bd7?w=400&h=600&fit=crop",
					Quantity: 1,
				},
			},
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
