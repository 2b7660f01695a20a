package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/bookstore/internal/adapter/storage"
	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/core/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog := service.NewCatalogService(storage.NewMemoryCatalog(storage.SeedBooks()))
	carts := storage.NewMemoryCartStore()
	cart := service.NewCartService(carts)
	auth := service.NewAuthService(storage.NewMemorySessionStore(), service.AdminCredentials{
		Email:    "admin@bookstore.com",
		Password: "admin",
	})
	orders := service.NewOrderService(storage.NewMemoryOrderStore(storage.SeedOrders()), carts)

	return NewHTTPHandler(catalog, cart, auth, orders).Router()
}

// do issues a request and returns the recorder plus the session token echoed
// by the server.
func do(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, rec.Header().Get(SessionHeader)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func loginAs(t *testing.T, router http.Handler, email, password string, admin bool) string {
	t.Helper()
	rec, token := do(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
		"admin":    admin,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, token)
	return token
}

func TestSessionTokenMintedOnFirstRequest(t *testing.T) {
	router := newTestRouter(t)

	rec, token := do(t, router, http.MethodGet, "/api/books", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, token)

	_, again := do(t, router, http.MethodGet, "/api/books", token, nil)
	assert.Equal(t, token, again, "known token is kept")
}

func TestListBooks_Filtering(t *testing.T) {
	router := newTestRouter(t)

	t.Run("full catalog", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/books", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var books []domain.Book
		decodeJSON(t, rec, &books)
		assert.Len(t, books, 12)
	})

	t.Run("by category", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/books?category=Fantasy", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var books []domain.Book
		decodeJSON(t, rec, &books)
		require.Len(t, books, 3)
		for _, b := range books {
			assert.Equal(t, "Fantasy", b.Category)
		}
	})

	t.Run("search and category combined", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/books?category=Fantasy&q=tolkien", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var books []domain.Book
		decodeJSON(t, rec, &books)
		assert.Len(t, books, 2)
	})

	t.Run("unknown book is 404", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/books/999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)
	_, token := do(t, router, http.MethodGet, "/api/cart", "", nil)

	t.Run("add merges quantities", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{
			"book_id": "1", "quantity": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{
			"book_id": "1", "quantity": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var cart cartResponse
		decodeJSON(t, rec, &cart)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		assert.Equal(t, 3, cart.TotalItems)
		assert.Equal(t, "38.97", cart.TotalPrice)
	})

	t.Run("add clamps to stock", func(t *testing.T) {
		// Book 5 has 10 in stock.
		rec, _ := do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{
			"book_id": "5", "quantity": 99,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var cart cartResponse
		decodeJSON(t, rec, &cart)
		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 10, cart.Lines[1].Quantity)
	})

	t.Run("unknown book is 404", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{
			"book_id": "999", "quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero quantity update removes the line", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPut, "/api/cart/items/5", token, map[string]interface{}{
			"quantity": 0,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var cart cartResponse
		decodeJSON(t, rec, &cart)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "1", cart.Lines[0].BookID)
	})

	t.Run("clear zeroes the cart", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodDelete, "/api/cart", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var cart cartResponse
		decodeJSON(t, rec, &cart)
		assert.Empty(t, cart.Lines)
		assert.Equal(t, 0, cart.TotalItems)
		assert.Equal(t, "0.00", cart.TotalPrice)
	})
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("me without login", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login then me then logout", func(t *testing.T) {
		token := loginAs(t, router, "reader@example.com", "secret", false)

		rec, _ := do(t, router, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me identityResponse
		decodeJSON(t, rec, &me)
		assert.Equal(t, "reader", me.Identity.Name)
		assert.Equal(t, domain.RoleUser, me.Identity.Role)

		rec, _ = do(t, router, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec, _ = do(t, router, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin login with wrong credentials", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email": "admin@bookstore.com", "password": "nope", "admin": true,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("register validates fields", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name": "", "email": "jane@example.com", "password": "secret",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = do(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name": "Jane", "email": "jane@example.com", "password": "secret",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAdminGate(t *testing.T) {
	router := newTestRouter(t)

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/api/admin/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("plain user gets 403", func(t *testing.T) {
		token := loginAs(t, router, "reader@example.com", "secret", false)
		rec, _ := do(t, router, http.MethodGet, "/api/admin/orders", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token := loginAs(t, router, "admin@bookstore.com", "admin", true)
		rec, _ := do(t, router, http.MethodGet, "/api/admin/orders", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminBookManagement(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@bookstore.com", "admin", true)

	t.Run("create assigns the next id", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/admin/books", token, map[string]interface{}{
			"title": "Dune", "author": "Frank Herbert", "category": "Science Fiction",
			"price": "18.99", "stock": 10, "rating": 4.6,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var book domain.Book
		decodeJSON(t, rec, &book)
		assert.Equal(t, "13", book.ID)
	})

	t.Run("create rejects an unknown category", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/admin/books", token, map[string]interface{}{
			"title": "Cookbook", "author": "Chef", "category": "Cookbooks", "price": "5.00",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update missing book is 404", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPut, "/api/admin/books/999", token, map[string]interface{}{
			"title": "Ghost", "author": "Nobody", "category": "Classic", "price": "1.00",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodDelete, "/api/admin/books/13", token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec, _ = do(t, router, http.MethodGet, "/api/books/13", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("anonymous cannot check out", func(t *testing.T) {
		_, token := do(t, router, http.MethodGet, "/api/cart", "", nil)
		do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{"book_id": "1"})

		rec, _ := do(t, router, http.MethodPost, "/api/checkout", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty cart is a conflict", func(t *testing.T) {
		token := loginAs(t, router, "reader@example.com", "secret", false)
		rec, _ := do(t, router, http.MethodPost, "/api/checkout", token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("full flow", func(t *testing.T) {
		token := loginAs(t, router, "buyer@example.com", "secret", false)
		rec, _ := do(t, router, http.MethodPost, "/api/cart/items", token, map[string]interface{}{
			"book_id": "1", "quantity": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, router, http.MethodPost, "/api/checkout", token, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var order domain.Order
		decodeJSON(t, rec, &order)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, "25.98", order.Total.StringFixed(2))

		// Cart is cleared by checkout.
		rec, _ = do(t, router, http.MethodGet, "/api/cart", token, nil)
		var cart cartResponse
		decodeJSON(t, rec, &cart)
		assert.Equal(t, 0, cart.TotalItems)

		// The order shows up in history.
		rec, _ = do(t, router, http.MethodGet, "/api/orders", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []domain.Order
		decodeJSON(t, rec, &orders)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
	})
}

func TestAdminOrderStatus(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@bookstore.com", "admin", true)

	rec, _ := do(t, router, http.MethodPut, "/api/admin/orders/ORD-ABC123/status", token, map[string]interface{}{
		"status": "shipping",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodPut, "/api/admin/orders/ORD-ABC123/status", token, map[string]interface{}{
		"status": "returned",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, router, http.MethodPut, "/api/admin/orders/ORD-NOPE/status", token, map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
